package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
)

// CompareEngine runs a base purchase against its variants
type CompareEngine struct {
	Calc     *calculation.Calculator
	Variants *VariantRegistry
}

// NewCompareEngine creates a comparison engine with the built-in variants
func NewCompareEngine(calc *calculation.Calculator) *CompareEngine {
	return &CompareEngine{Calc: calc, Variants: BuiltInVariants()}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	// Variants to apply. Empty means every registered variant that changes
	// the base purchase.
	Variants []string
}

// Compare calculates the base purchase and each variant of it
func (ce *CompareEngine) Compare(ctx context.Context, base Purchase, options CompareOptions) (*ComparisonSet, error) {
	base = base.Normalized()
	if !base.Value.IsPositive() {
		return nil, fmt.Errorf("property value must be positive, got %s", base.Value)
	}

	baseResult := newResult("base", "As entered", base, ce.cost(base))

	names := options.Variants
	explicit := len(names) > 0
	if !explicit {
		names = ce.Variants.Names()
	}

	alternatives := []ComparisonResult{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		variant, ok := ce.Variants.Get(name)
		if !ok {
			return nil, fmt.Errorf("variant %s not found", name)
		}

		modified := variant.Apply(base).Normalized()
		if !explicit && modified.Equal(base) {
			continue
		}

		alt := newResult(variant.Name, variant.Description, modified, ce.cost(modified))
		alternatives = append(alternatives, CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	ce.Calc.Logger.Infof("compared %s against %d variants", base.Value, len(alternatives))
	return compSet, nil
}

func (ce *CompareEngine) cost(p Purchase) domain.PurchaseCosts {
	return ce.Calc.CalculatePurchaseCosts(p.Value, p.Loan, p.Type, p.Location)
}
