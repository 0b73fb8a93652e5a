package domain

import "github.com/shopspring/decimal"

// BatchInput is a file of properties to evaluate in one run
type BatchInput struct {
	Metadata   BatchMetadata `yaml:"metadata" json:"metadata"`
	Properties []BatchEntry  `yaml:"properties" json:"properties"`
}

// BatchMetadata describes where a batch came from
type BatchMetadata struct {
	Title  string `yaml:"title" json:"title"`
	Source string `yaml:"source" json:"source"`
}

// BatchEntry is one property in a batch. Location may be left empty when
// District names one of the autonomous regions.
type BatchEntry struct {
	Name     string          `yaml:"name" json:"name"`
	Value    decimal.Decimal `yaml:"value" json:"value"`
	Type     PropertyType    `yaml:"type" json:"type"`
	Location Location        `yaml:"location" json:"location"`
	Loan     decimal.Decimal `yaml:"loan" json:"loan"`
	AreaM2   decimal.Decimal `yaml:"area_m2" json:"area_m2"`
	ZipCode  string          `yaml:"zip" json:"zip"`
	District string          `yaml:"district" json:"district"`
}

// BatchRow is the evaluated form of a BatchEntry
type BatchRow struct {
	Entry          BatchEntry      `json:"entry"`
	Costs          PurchaseCosts   `json:"costs"`
	AreaFt2        decimal.Decimal `json:"areaFt2"`
	PricePerM2     decimal.Decimal `json:"pricePerM2"`
	FormattedPrice string          `json:"formattedPrice"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// BatchTotals sums the rows of a report
type BatchTotals struct {
	PropertyValue decimal.Decimal `json:"propertyValue"`
	IMT           decimal.Decimal `json:"imt"`
	StampDuty     decimal.Decimal `json:"stampDuty"`
	TotalTaxes    decimal.Decimal `json:"totalTaxes"`
}

// BatchReport is the result of evaluating a BatchInput
type BatchReport struct {
	Title       string      `json:"title"`
	RulesYear   int         `json:"rulesYear"`
	Assumptions []string    `json:"assumptions,omitempty"`
	Rows        []BatchRow  `json:"rows"`
	Totals      BatchTotals `json:"totals"`
}
