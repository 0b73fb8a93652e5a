package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Kind",
		"Property Type",
		"Location",
		"Property Value",
		"Loan",
		"IMT",
		"Stamp Duty (Deed)",
		"Stamp Duty (Loan)",
		"Total Taxes",
		"Total Cost",
		"Tax Diff from Base",
		"Tax % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	c := result.Costs
	return []string{
		result.ScenarioName,
		kind,
		string(result.Purchase.Type),
		string(result.Purchase.Location),
		c.PropertyValue.StringFixed(2),
		c.LoanAmount.StringFixed(2),
		c.IMT.IMT.StringFixed(2),
		c.AcquisitionStampDuty.StringFixed(2),
		c.LoanStampDuty.StringFixed(2),
		c.TotalTaxes.StringFixed(2),
		c.TotalCost.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.TaxPctFromBase.StringFixed(2),
	}
}
