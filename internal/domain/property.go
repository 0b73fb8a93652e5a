package domain

// PropertyType identifies the kind of property being acquired
type PropertyType string

const (
	PropertyResidential   PropertyType = "residential"
	PropertySecondaryHome PropertyType = "secondary-home"
	PropertyCommercial    PropertyType = "commercial"
	PropertyLand          PropertyType = "land"
)

// Schedule names used as keys in FiscalRules.Schedules
const (
	ScheduleResidential      = "residential"
	ScheduleSecondaryHome    = "secondary-home"
	ScheduleCommercialOrLand = "commercial-or-land"
)

// PropertyTypes lists the recognised property types in display order
var PropertyTypes = []PropertyType{
	PropertyResidential,
	PropertySecondaryHome,
	PropertyCommercial,
	PropertyLand,
}

// ScheduleName returns the fiscal schedule that applies to the property type.
// Commercial property and land share one flat-rate schedule. An empty type
// is treated as residential; an unrecognised type returns false.
func (pt PropertyType) ScheduleName() (string, bool) {
	switch pt {
	case PropertyResidential, "":
		return ScheduleResidential, true
	case PropertySecondaryHome:
		return ScheduleSecondaryHome, true
	case PropertyCommercial, PropertyLand:
		return ScheduleCommercialOrLand, true
	default:
		return "", false
	}
}

// OrDefault returns residential for an empty property type
func (pt PropertyType) OrDefault() PropertyType {
	if pt == "" {
		return PropertyResidential
	}
	return pt
}

// Location is where the property sits: the mainland or one of the
// autonomous regions
type Location string

const (
	LocationMainland Location = "mainland"
	LocationMadeira  Location = "madeira"
	LocationAzores   Location = "azores"
)

// Locations lists the recognised locations in display order
var Locations = []Location{LocationMainland, LocationMadeira, LocationAzores}

// OrDefault returns mainland for an empty location
func (l Location) OrDefault() Location {
	if l == "" {
		return LocationMainland
	}
	return l
}

// IsIsland reports whether the island reduction applies. Anything that is
// not the mainland counts, including unrecognised values.
func (l Location) IsIsland() bool {
	return l.OrDefault() != LocationMainland
}

// District is a Portuguese administrative district (or autonomous region)
// with its main cities
type District struct {
	Name   string   `yaml:"name" json:"name"`
	Code   string   `yaml:"code" json:"code"`
	Region string   `yaml:"region" json:"region"`
	Cities []string `yaml:"cities" json:"cities"`
}
