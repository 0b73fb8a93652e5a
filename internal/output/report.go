package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as euros
func FormatCurrency(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate formats a fractional rate such as 0.065 as a percentage
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// WriteIMTResult prints a single IMT calculation, followed by the bracket
// breakdown when one is given
func WriteIMTResult(w io.Writer, result domain.IMTResult, parts []domain.BracketContribution) {
	fmt.Fprintln(w, "IMT CALCULATION")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	if !result.Valid() {
		fmt.Fprintf(w, "IMT:            %s\n", FormatCurrency(result.IMT))
		fmt.Fprintf(w, "Details:        %s\n", result.Details)
		return
	}
	fmt.Fprintf(w, "Property value: %s\n", FormatCurrency(result.PropertyValue))
	fmt.Fprintf(w, "Property type:  %s\n", result.PropertyType)
	fmt.Fprintf(w, "Location:       %s\n", result.Location)
	fmt.Fprintf(w, "IMT:            %s\n", FormatCurrency(result.IMT))
	fmt.Fprintf(w, "Effective rate: %s\n", FormatPercentage(result.Rate))
	fmt.Fprintf(w, "Island reduction: %s\n", result.IslandReduction)

	if len(parts) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "BRACKET BREAKDOWN (before island reduction)")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-27s %7s %12s %12s\n", "Bracket", "Rate", "Taxable", "Tax")
	for _, p := range parts {
		fmt.Fprintf(w, "%-27s %7s %12s %12s\n", bracketLabel(p), FormatRate(p.Rate), p.Taxable.StringFixed(2), p.Tax.StringFixed(2))
	}
}

// WritePurchaseCosts prints the full tax summary for a purchase
func WritePurchaseCosts(w io.Writer, costs domain.PurchaseCosts) {
	fmt.Fprintln(w, "PURCHASE COSTS")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	if !costs.IMT.Valid() {
		fmt.Fprintf(w, "Details:        %s\n", costs.IMT.Details)
		return
	}
	fmt.Fprintf(w, "Property value:        %s\n", FormatCurrency(costs.PropertyValue))
	fmt.Fprintf(w, "Loan amount:           %s\n", FormatCurrency(costs.LoanAmount))
	fmt.Fprintf(w, "IMT:                   %s (%s)\n", FormatCurrency(costs.IMT.IMT), FormatPercentage(costs.IMT.Rate))
	fmt.Fprintf(w, "Stamp duty (deed):     %s\n", FormatCurrency(costs.AcquisitionStampDuty))
	fmt.Fprintf(w, "Stamp duty (loan):     %s\n", FormatCurrency(costs.LoanStampDuty))
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Total taxes:           %s\n", FormatCurrency(costs.TotalTaxes))
	fmt.Fprintf(w, "Total cost:            %s\n", FormatCurrency(costs.TotalCost))
}

func bracketLabel(p domain.BracketContribution) string {
	if p.Max == nil {
		return fmt.Sprintf("above %s", p.Min.StringFixed(0))
	}
	return fmt.Sprintf("%s - %s", p.Min.StringFixed(0), p.Max.StringFixed(0))
}
