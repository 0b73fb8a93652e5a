package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/domain"
)

// ConsoleFormatter renders a batch report as a fixed-width table
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 100))
	fmt.Fprintln(&buf, "PROPERTY PURCHASE TAX REPORT")
	if report.Title != "" {
		fmt.Fprintln(&buf, report.Title)
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 100))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	nameWidth := 24
	fmt.Fprintf(&buf, "%-*s %-14s %-9s %14s %12s %7s %10s %12s\n",
		nameWidth, "Property", "Type", "Location", "Value", "IMT", "Rate", "Stamp", "Total Tax")
	fmt.Fprintln(&buf, strings.Repeat("-", 100))

	for _, row := range report.Rows {
		costs := row.Costs
		if !costs.IMT.Valid() {
			fmt.Fprintf(&buf, "%-*s %s\n", nameWidth, truncate(row.Entry.Name, nameWidth), costs.IMT.Details)
			continue
		}
		stamp := costs.AcquisitionStampDuty.Add(costs.LoanStampDuty)
		fmt.Fprintf(&buf, "%-*s %-14s %-9s %14s %12s %7s %10s %12s\n",
			nameWidth, truncate(row.Entry.Name, nameWidth),
			costs.IMT.PropertyType,
			costs.IMT.Location,
			costs.PropertyValue.StringFixed(2),
			costs.IMT.IMT.StringFixed(2),
			FormatPercentage(costs.IMT.Rate),
			stamp.StringFixed(2),
			costs.TotalTaxes.StringFixed(2))
	}

	fmt.Fprintln(&buf, strings.Repeat("-", 100))
	t := report.Totals
	fmt.Fprintf(&buf, "%-*s %-14s %-9s %14s %12s %7s %10s %12s\n",
		nameWidth, "TOTAL", "", "",
		t.PropertyValue.StringFixed(2), t.IMT.StringFixed(2), "", t.StampDuty.StringFixed(2), t.TotalTaxes.StringFixed(2))
	fmt.Fprintln(&buf, strings.Repeat("=", 100))

	var warned bool
	for _, row := range report.Rows {
		if len(row.Warnings) == 0 {
			continue
		}
		if !warned {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, "WARNINGS:")
			warned = true
		}
		for _, w := range row.Warnings {
			fmt.Fprintf(&buf, "⚠️  %s: %s\n", row.Entry.Name, w)
		}
	}

	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
