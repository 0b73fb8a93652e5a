package breakeven

import (
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/output"
)

// WriteResult prints an affordability result followed by the purchase
// costs at the solved price
func WriteResult(w io.Writer, result *AffordabilityResult) {
	fmt.Fprintln(w, "AFFORDABILITY")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "Budget:                %s\n", output.FormatCurrency(result.Request.Budget))
	fmt.Fprintf(w, "Loan amount:           %s\n", output.FormatCurrency(result.Request.LoanAmount))
	fmt.Fprintf(w, "Property type:         %s\n", result.Request.PropertyType)
	fmt.Fprintf(w, "Location:              %s\n", result.Request.Location)

	if !result.Feasible {
		fmt.Fprintln(w, "\nThe budget does not cover the taxes on any purchase.")
		return
	}

	fmt.Fprintf(w, "Max property value:    %s\n", output.FormatCurrency(result.MaxPropertyValue))
	fmt.Fprintf(w, "Unspent:               %s\n\n", output.FormatCurrency(result.Headroom))
	output.WritePurchaseCosts(w, result.Costs)
}
