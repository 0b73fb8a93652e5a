package compare

import (
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Purchase is one set of inputs to the purchase-cost calculation
type Purchase struct {
	Value    decimal.Decimal     `json:"value"`
	Loan     decimal.Decimal     `json:"loan"`
	Type     domain.PropertyType `json:"type"`
	Location domain.Location     `json:"location"`
}

// Normalized returns the purchase with the default type and location filled in
func (p Purchase) Normalized() Purchase {
	p.Type = p.Type.OrDefault()
	p.Location = p.Location.OrDefault()
	return p
}

// Equal reports whether two purchases produce the same calculation
func (p Purchase) Equal(other Purchase) bool {
	a, b := p.Normalized(), other.Normalized()
	return a.Value.Equal(b.Value) && a.Loan.Equal(b.Loan) && a.Type == b.Type && a.Location == b.Location
}

// ComparisonResult is one purchase scenario with its costs and the
// difference from the base scenario
type ComparisonResult struct {
	ScenarioName string               `json:"scenarioName"`
	Description  string               `json:"description"`
	Purchase     Purchase             `json:"purchase"`
	Costs        domain.PurchaseCosts `json:"costs"`

	TaxDiffFromBase decimal.Decimal `json:"taxDiffFromBase"`
	TaxPctFromBase  decimal.Decimal `json:"taxPctFromBase"`
}

// ComparisonSet is a base scenario and its alternatives
type ComparisonSet struct {
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// newResult builds a result with no comparison filled in
func newResult(name, description string, p Purchase, costs domain.PurchaseCosts) ComparisonResult {
	return ComparisonResult{
		ScenarioName:    name,
		Description:     description,
		Purchase:        p,
		Costs:           costs,
		TaxDiffFromBase: decimal.Zero,
		TaxPctFromBase:  decimal.Zero,
	}
}

// CalculateComparison fills in the tax difference between a scenario and the base
func CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TaxDiffFromBase = scenario.Costs.TotalTaxes.Sub(base.Costs.TotalTaxes)
	if !base.Costs.TotalTaxes.IsZero() {
		scenario.TaxPctFromBase = scenario.TaxDiffFromBase.
			Div(base.Costs.TotalTaxes).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return scenario
}

// GenerateRecommendations points out the cheapest and dearest alternatives
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	lowest, highest := compSet.BaseResult, compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Costs.TotalTaxes.LessThan(lowest.Costs.TotalTaxes) {
			lowest = alt
		}
		if alt.Costs.TotalTaxes.GreaterThan(highest.Costs.TotalTaxes) {
			highest = alt
		}
	}

	if lowest != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest taxes: "+lowest.ScenarioName+" saves €"+lowest.TaxDiffFromBase.Abs().StringFixed(2))
	}
	if highest != compSet.BaseResult {
		recommendations = append(recommendations,
			"Highest taxes: "+highest.ScenarioName+" costs €"+highest.TaxDiffFromBase.StringFixed(2)+" more")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "No alternative changes the taxes due")
	}
	return recommendations
}
