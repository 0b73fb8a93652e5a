package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FiscalRules contains the tax tables used by the calculators.
// Defaults are built in; a rules file may override any part of them.
type FiscalRules struct {
	Metadata        RulesMetadata             `yaml:"metadata" json:"metadata"`
	Schedules       map[string]FiscalSchedule `yaml:"schedules" json:"schedules"`
	IslandReduction decimal.Decimal           `yaml:"island_reduction" json:"island_reduction"`
	StampDuty       StampDutyRules            `yaml:"stamp_duty" json:"stamp_duty"`
}

// RulesMetadata contains information about the rules data
type RulesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// StampDutyRules contains Imposto do Selo rates
type StampDutyRules struct {
	LoanRate        decimal.Decimal `yaml:"loan_rate" json:"loan_rate"`
	AcquisitionRate decimal.Decimal `yaml:"acquisition_rate" json:"acquisition_rate"`
}

// TaxBracket is one segment of a fiscal schedule. A value v falls in the
// bracket when Min < v <= Max; the first bracket also holds v = 0.
// A nil Max means the bracket is unbounded.
//
// Marginal brackets tax only the portion of the value above Min. A
// WholeValue bracket applies Rate to the entire value and ignores the
// brackets below it.
type TaxBracket struct {
	Min        decimal.Decimal  `yaml:"min" json:"min"`
	Max        *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
	WholeValue bool             `yaml:"whole_value,omitempty" json:"whole_value,omitempty"`
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// Contains reports whether value falls inside the bracket
func (b TaxBracket) Contains(value decimal.Decimal) bool {
	if value.LessThan(b.Min) {
		return false
	}
	if value.Equal(b.Min) && !b.Min.IsZero() {
		return false
	}
	return b.Unbounded() || value.LessThanOrEqual(*b.Max)
}

// Width returns Max - Min, or zero for an unbounded bracket
func (b TaxBracket) Width() decimal.Decimal {
	if b.Unbounded() {
		return decimal.Zero
	}
	return b.Max.Sub(b.Min)
}

// FiscalSchedule is an ordered set of brackets covering [0, ∞)
type FiscalSchedule struct {
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Brackets    []TaxBracket `yaml:"brackets" json:"brackets"`
}

// Validate checks that brackets start at zero, ascend without gaps or
// overlaps, end unbounded and carry rates within [0, 1]
func (s FiscalSchedule) Validate() error {
	if len(s.Brackets) == 0 {
		return fmt.Errorf("schedule has no brackets")
	}
	if !s.Brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", s.Brackets[0].Min)
	}
	for i, b := range s.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate %s must be between 0 and 1", i, b.Rate)
		}
		last := i == len(s.Brackets)-1
		if b.Unbounded() {
			if !last {
				return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("bracket %d: last bracket must be unbounded", i)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max %s must be greater than min %s", i, b.Max, b.Min)
		}
		next := s.Brackets[i+1]
		if !next.Min.Equal(*b.Max) {
			return fmt.Errorf("bracket %d: next bracket starts at %s, expected %s", i, next.Min, b.Max)
		}
	}
	return nil
}

// BracketFor returns the index of the bracket containing value, or -1
func (s FiscalSchedule) BracketFor(value decimal.Decimal) int {
	for i, b := range s.Brackets {
		if b.Contains(value) {
			return i
		}
	}
	return -1
}

// BaseAt returns the tax accumulated by fully consuming every marginal
// bracket below index i. WholeValue brackets contribute nothing.
func (s FiscalSchedule) BaseAt(i int) decimal.Decimal {
	base := decimal.Zero
	for j := 0; j < i && j < len(s.Brackets); j++ {
		b := s.Brackets[j]
		if b.WholeValue {
			continue
		}
		base = base.Add(b.Width().Mul(b.Rate))
	}
	return base
}

// IMTResult is the outcome of a property transfer tax calculation.
// For invalid property values only IMT, Rate and Details are set.
type IMTResult struct {
	IMT             decimal.Decimal `json:"imt"`
	Rate            decimal.Decimal `json:"rate"`
	PropertyValue   decimal.Decimal `json:"propertyValue"`
	PropertyType    PropertyType    `json:"propertyType,omitempty"`
	Location        Location        `json:"location,omitempty"`
	IslandReduction string          `json:"islandReduction,omitempty"`
	Details         string          `json:"details,omitempty"`
}

// Valid reports whether the result comes from a positive property value
func (r IMTResult) Valid() bool {
	return r.Details == ""
}

// BracketContribution is the tax one bracket adds for a given value
type BracketContribution struct {
	Index      int              `json:"index"`
	Min        decimal.Decimal  `json:"min"`
	Max        *decimal.Decimal `json:"max,omitempty"`
	Rate       decimal.Decimal  `json:"rate"`
	Taxable    decimal.Decimal  `json:"taxable"`
	Tax        decimal.Decimal  `json:"tax"`
	WholeValue bool             `json:"wholeValue,omitempty"`
}

// PurchaseCosts summarises the taxes due on acquiring a property
type PurchaseCosts struct {
	PropertyValue        decimal.Decimal `json:"propertyValue"`
	LoanAmount           decimal.Decimal `json:"loanAmount"`
	IMT                  IMTResult       `json:"imt"`
	AcquisitionStampDuty decimal.Decimal `json:"acquisitionStampDuty"`
	LoanStampDuty        decimal.Decimal `json:"loanStampDuty"`
	TotalTaxes           decimal.Decimal `json:"totalTaxes"`
	TotalCost            decimal.Decimal `json:"totalCost"`
}
