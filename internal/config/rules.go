package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RulesParser handles loading fiscal rules files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads fiscal rules from a YAML file. Anything the file leaves
// out keeps the built-in 2024 value.
func (rp *RulesParser) LoadFromFile(filename string) (*domain.FiscalRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return rp.Parse(data)
}

// Parse decodes rules from YAML over the defaults and validates the result
func (rp *RulesParser) Parse(data []byte) (*domain.FiscalRules, error) {
	rules := calculation.DefaultFiscalRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRules checks every schedule and rate in the rules
func (rp *RulesParser) ValidateRules(rules *domain.FiscalRules) error {
	for _, name := range []string{domain.ScheduleResidential, domain.ScheduleSecondaryHome, domain.ScheduleCommercialOrLand} {
		if _, ok := rules.Schedules[name]; !ok {
			return fmt.Errorf("schedule %q is required", name)
		}
	}
	for name, schedule := range rules.Schedules {
		if err := schedule.Validate(); err != nil {
			return fmt.Errorf("schedule %q: %w", name, err)
		}
	}

	if err := validateFraction("island_reduction", rules.IslandReduction); err != nil {
		return err
	}
	if err := validateFraction("stamp_duty.loan_rate", rules.StampDuty.LoanRate); err != nil {
		return err
	}
	if err := validateFraction("stamp_duty.acquisition_rate", rules.StampDuty.AcquisitionRate); err != nil {
		return err
	}

	if rules.Metadata.DataYear < 2000 || rules.Metadata.DataYear > 2100 {
		return fmt.Errorf("metadata.data_year %d is out of range", rules.Metadata.DataYear)
	}
	return nil
}

func validateFraction(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", field, v)
	}
	return nil
}
