package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BatchParser handles parsing of batch property files
type BatchParser struct{}

// NewBatchParser creates a new batch parser
func NewBatchParser() *BatchParser {
	return &BatchParser{}
}

// LoadFromFile loads a batch of properties from a YAML file
func (bp *BatchParser) LoadFromFile(filename string) (*domain.BatchInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.BatchInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := bp.ValidateBatch(&input); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &input, nil
}

var batchAmountFields = []string{"value", "loan", "area_m2"}

// ValidateBatch checks the structure of a batch. Per-property problems such
// as a bad value or postal code are reported as warnings when the batch runs.
func (bp *BatchParser) ValidateBatch(input *domain.BatchInput) error {
	if len(input.Properties) == 0 {
		return fmt.Errorf("at least one property is required")
	}

	seen := make(map[string]bool, len(input.Properties))
	for i, p := range input.Properties {
		if p.Name == "" {
			return fmt.Errorf("property %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("property %d: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
		for field, d := range []decimal.Decimal{p.Value, p.Loan, p.AreaM2} {
			if err := domain.CheckAmount(d); err != nil {
				return fmt.Errorf("property %d (%s): %s: %w", i, p.Name, batchAmountFields[field], err)
			}
		}
		if p.Loan.IsNegative() {
			return fmt.Errorf("property %d (%s): loan cannot be negative", i, p.Name)
		}
		if p.AreaM2.IsNegative() {
			return fmt.Errorf("property %d (%s): area cannot be negative", i, p.Name)
		}
	}
	return nil
}
