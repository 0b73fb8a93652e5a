package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing purchase scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	base := compSet.BaseResult
	sb.WriteString("PURCHASE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Property value: %s   Loan: %s\n\n",
		output.FormatCurrency(base.Purchase.Value), output.FormatCurrency(base.Purchase.Loan)))

	nameWidth := 16
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %-15s %-9s %*s %*s %*s\n",
		nameWidth, "Scenario", "Type", "Location",
		numWidth, "IMT",
		numWidth, "Total Taxes",
		numWidth, "vs Base"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	delta := "-"
	if !isBase {
		delta = tf.deltaSymbol(result.TaxDiffFromBase) + result.TaxDiffFromBase.StringFixed(2)
	}
	return fmt.Sprintf("%-*s %-15s %-9s %*s %*s %*s\n",
		nameWidth, tf.truncate(result.ScenarioName, nameWidth),
		result.Purchase.Type,
		result.Purchase.Location,
		numWidth, result.Costs.IMT.IMT.StringFixed(2),
		numWidth, result.Costs.TotalTaxes.StringFixed(2),
		numWidth, delta)
}

// deltaSymbol prefixes increases with +; decreases already carry a sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line summary of the tax change per scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", output.FormatCurrency(compSet.BaseResult.Costs.TotalTaxes)))
	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.TaxDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.TaxDiffFromBase) + alt.TaxDiffFromBase.StringFixed(2)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}
	return sb.String()
}
