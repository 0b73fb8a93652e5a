package compare

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func basePurchase() Purchase {
	return Purchase{Value: dec("300000"), Loan: dec("240000")}
}

func compareAll(t *testing.T) *ComparisonSet {
	t.Helper()
	set, err := NewCompareEngine(calculation.NewCalculator()).Compare(context.Background(), basePurchase(), CompareOptions{})
	require.NoError(t, err)
	return set
}

func TestCompare_AllVariants(t *testing.T) {
	set := compareAll(t)

	require.NotNil(t, set.BaseResult)
	assert.Equal(t, domain.PropertyResidential, set.BaseResult.Purchase.Type)
	assert.Equal(t, domain.LocationMainland, set.BaseResult.Purchase.Location)
	assert.True(t, dec("18014.58").Equal(set.BaseResult.Costs.TotalTaxes))

	// residential and mainland leave the base unchanged and are skipped
	var names []string
	for _, alt := range set.AlternativeResults {
		names = append(names, alt.ScenarioName)
	}
	assert.Equal(t, []string{"secondary-home", "commercial", "land", "madeira", "azores", "no-loan"}, names)

	want := map[string][2]string{
		"secondary-home": {"970.64", "5.39"},
		"commercial":     {"5325.42", "29.56"},
		"land":           {"5325.42", "29.56"},
		"madeira":        {"-2834.92", "-15.74"},
		"azores":         {"-2834.92", "-15.74"},
		"no-loan":        {"-1440", "-7.99"},
	}
	for _, alt := range set.AlternativeResults {
		w := want[alt.ScenarioName]
		assert.True(t, dec(w[0]).Equal(alt.TaxDiffFromBase), "%s diff %s", alt.ScenarioName, alt.TaxDiffFromBase)
		assert.True(t, dec(w[1]).Equal(alt.TaxPctFromBase), "%s pct %s", alt.ScenarioName, alt.TaxPctFromBase)
	}

	assert.Equal(t, []string{
		"Lowest taxes: madeira saves €2834.92",
		"Highest taxes: commercial costs €5325.42 more",
	}, set.Recommendations)
}

func TestCompare_ExplicitVariants(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculator())

	set, err := engine.Compare(context.Background(), basePurchase(), CompareOptions{Variants: []string{"mainland", "azores"}})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 2)

	assert.Equal(t, "mainland", set.AlternativeResults[0].ScenarioName)
	assert.True(t, set.AlternativeResults[0].TaxDiffFromBase.IsZero())
	assert.Equal(t, domain.LocationAzores, set.AlternativeResults[1].Purchase.Location)
}

func TestCompare_Errors(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculator())

	_, err := engine.Compare(context.Background(), basePurchase(), CompareOptions{Variants: []string{"castle"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant castle not found")

	_, err = engine.Compare(context.Background(), Purchase{Value: decimal.Zero}, CompareOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property value must be positive")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Compare(ctx, basePurchase(), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateRecommendations_NoChange(t *testing.T) {
	base := newResult("base", "", basePurchase(), domain.PurchaseCosts{TotalTaxes: dec("100")})
	alt := CalculateComparison(newResult("same", "", basePurchase(), domain.PurchaseCosts{TotalTaxes: dec("100")}), base)

	set := &ComparisonSet{BaseResult: &base, AlternativeResults: []ComparisonResult{alt}}
	assert.Equal(t, []string{"No alternative changes the taxes due"}, GenerateRecommendations(set))

	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &base}))
}

func TestVariantRegistry(t *testing.T) {
	r := BuiltInVariants()

	assert.Equal(t, []string{"residential", "secondary-home", "commercial", "land", "mainland", "madeira", "azores", "no-loan"}, r.Names())
	assert.Equal(t, "azores", r.SortedNames()[0])

	r.Register(Variant{Name: "land", Description: "replaced", Apply: func(p Purchase) Purchase { return p }})
	v, ok := r.Get("land")
	require.True(t, ok)
	assert.Equal(t, "replaced", v.Description)
	assert.Len(t, r.Names(), 8)

	_, ok = r.Get("castle")
	assert.False(t, ok)
}

func TestPurchase_Equal(t *testing.T) {
	p := Purchase{Value: dec("1000")}
	assert.True(t, p.Equal(Purchase{Value: dec("1000.00"), Type: domain.PropertyResidential, Location: domain.LocationMainland}))
	assert.False(t, p.Equal(Purchase{Value: dec("1000"), Loan: dec("1")}))
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(compareAll(t))

	assert.Contains(t, out, "PURCHASE SCENARIO COMPARISON")
	assert.Contains(t, out, "Property value: €300000.00   Loan: €240000.00")
	assert.Contains(t, out, "14174.58")
	assert.Contains(t, out, "+970.64")
	assert.Contains(t, out, "-2834.92")
	assert.Contains(t, out, "• Lowest taxes: madeira saves €2834.92")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	out := (&TableFormatter{}).FormatCompact(compareAll(t))

	assert.True(t, strings.HasPrefix(out, "Base: €18014.58 | "))
	assert.Contains(t, out, "no-loan: -1440.00")
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(compareAll(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Len(t, records[0], 13)
	assert.Equal(t, []string{"base", "base"}, records[1][:2])
	assert.Equal(t, "18014.58", records[1][9])
	assert.Equal(t, "alternative", records[2][1])
}

func TestJSONFormatter_Format(t *testing.T) {
	set := compareAll(t)

	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(set)
		require.NoError(t, err)
		assert.Equal(t, pretty, strings.Contains(out, "\n  "))

		var decoded comparisonJSON
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "base", decoded.Base.Name)
		assert.Equal(t, domain.PropertyResidential, decoded.Base.PropertyType)
		assert.Equal(t, "18014.58", decoded.Base.TotalTaxes)
		assert.Equal(t, "0.00", decoded.Base.TaxDiffFromBase)
		require.Len(t, decoded.Alternatives, 6)

		noLoan := decoded.Alternatives[5]
		assert.Equal(t, "no-loan", noLoan.Name)
		assert.Equal(t, "0.00", noLoan.LoanAmount)
		assert.Equal(t, "0.00", noLoan.LoanStampDuty)
		assert.Equal(t, "-1440.00", noLoan.TaxDiffFromBase)
		assert.Equal(t, "-7.99", noLoan.TaxPctFromBase)
		assert.Equal(t, set.Recommendations, decoded.Recommendations)
	}

	// € in recommendations is written as is
	out, err := (&JSONFormatter{}).Format(set)
	require.NoError(t, err)
	assert.Contains(t, out, "€")
	assert.NotContains(t, out, "\\u20ac")
}

func TestJSONFormatter_NoBase(t *testing.T) {
	_, err := (&JSONFormatter{}).Format(&ComparisonSet{})
	assert.EqualError(t, err, "comparison has no base scenario")

	out, err := (&JSONFormatter{}).Format(&ComparisonSet{BaseResult: &ComparisonResult{ScenarioName: "base"}})
	require.NoError(t, err)
	assert.Contains(t, out, `"alternatives":[]`)
	assert.Contains(t, out, `"recommendations":[]`)
}
