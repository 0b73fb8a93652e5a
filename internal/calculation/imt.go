package calculation

import (
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// InvalidValueDetails is reported for zero, negative or missing values
const InvalidValueDetails = "Invalid property value"

var hundred = decimal.NewFromInt(100)

// Calculator computes IMT and stamp duty from a set of fiscal rules.
// It holds no mutable state once built and may be shared.
type Calculator struct {
	Rules  domain.FiscalRules
	Logger Logger
}

// NewCalculator creates a calculator using the 2024 tables
func NewCalculator() *Calculator {
	return NewCalculatorWithRules(DefaultFiscalRules())
}

// NewCalculatorWithRules creates a calculator with configurable tables
func NewCalculatorWithRules(rules domain.FiscalRules) *Calculator {
	return &Calculator{Rules: rules, Logger: NopLogger{}}
}

// SetLogger sets the logger; nil restores the no-op logger
func (c *Calculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

var defaultCalculator = NewCalculator()

// CalculateIMT computes IMT with the 2024 tables
func CalculateIMT(value decimal.Decimal, propertyType domain.PropertyType, location domain.Location) domain.IMTResult {
	return defaultCalculator.CalculateIMT(value, propertyType, location)
}

// Schedule returns the schedule for a property type, if any
func (c *Calculator) Schedule(propertyType domain.PropertyType) (domain.FiscalSchedule, bool) {
	name, ok := propertyType.ScheduleName()
	if !ok {
		return domain.FiscalSchedule{}, false
	}
	s, ok := c.Rules.Schedules[name]
	return s, ok
}

// CalculateIMT computes the property transfer tax. It never fails: a
// non-positive value yields a zero result carrying InvalidValueDetails,
// and an unknown property type yields a zero tax.
//
// The island multiplier is applied before the effective rate is derived,
// and both figures are rounded to cents only at the end.
func (c *Calculator) CalculateIMT(value decimal.Decimal, propertyType domain.PropertyType, location domain.Location) domain.IMTResult {
	if !value.IsPositive() {
		return domain.IMTResult{IMT: decimal.Zero, Rate: decimal.Zero, Details: InvalidValueDetails}
	}

	propertyType = propertyType.OrDefault()
	location = location.OrDefault()

	imt := c.grossIMT(value, propertyType)

	islandReduction := "N/A"
	if location.IsIsland() {
		imt = imt.Mul(decimal.NewFromInt(1).Sub(c.Rules.IslandReduction))
		islandReduction = c.Rules.IslandReduction.Mul(hundred).String() + "%"
	}

	rate := imt.Div(value).Mul(hundred)

	return domain.IMTResult{
		IMT:             roundCurrency(imt),
		Rate:            roundCurrency(rate),
		PropertyValue:   value,
		PropertyType:    propertyType,
		Location:        location,
		IslandReduction: islandReduction,
	}
}

// grossIMT returns the unrounded tax before any island reduction
func (c *Calculator) grossIMT(value decimal.Decimal, propertyType domain.PropertyType) decimal.Decimal {
	schedule, ok := c.Schedule(propertyType)
	if !ok {
		c.Logger.Warnf("no IMT schedule for property type %q", propertyType)
		return decimal.Zero
	}

	i := schedule.BracketFor(value)
	if i < 0 {
		return decimal.Zero
	}
	b := schedule.Brackets[i]
	if b.WholeValue {
		c.Logger.Debugf("IMT %s: bracket %d, %s of whole value", value, i, b.Rate)
		return value.Mul(b.Rate)
	}

	base := schedule.BaseAt(i)
	c.Logger.Debugf("IMT %s: bracket %d, base %s + %s over %s", value, i, base, b.Rate, b.Min)
	return base.Add(value.Sub(b.Min).Mul(b.Rate))
}

// Breakdown lists what each bracket contributes to the gross tax for value.
// Amounts are rounded to cents for display; their sum can differ from the
// gross IMT by rounding.
func (c *Calculator) Breakdown(value decimal.Decimal, propertyType domain.PropertyType) []domain.BracketContribution {
	if !value.IsPositive() {
		return nil
	}
	schedule, ok := c.Schedule(propertyType.OrDefault())
	if !ok {
		return nil
	}
	i := schedule.BracketFor(value)
	if i < 0 {
		return nil
	}

	current := schedule.Brackets[i]
	if current.WholeValue {
		return []domain.BracketContribution{{
			Index:      i,
			Min:        current.Min,
			Max:        current.Max,
			Rate:       current.Rate,
			Taxable:    value,
			Tax:        roundCurrency(value.Mul(current.Rate)),
			WholeValue: true,
		}}
	}

	var out []domain.BracketContribution
	for j := 0; j <= i; j++ {
		b := schedule.Brackets[j]
		taxable := b.Width()
		if j == i {
			taxable = value.Sub(b.Min)
		}
		out = append(out, domain.BracketContribution{
			Index:   j,
			Min:     b.Min,
			Max:     b.Max,
			Rate:    b.Rate,
			Taxable: taxable,
			Tax:     roundCurrency(taxable.Mul(b.Rate)),
		})
	}
	return out
}

// roundCurrency rounds half away from zero to two decimal places
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
