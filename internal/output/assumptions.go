package output

import (
	"fmt"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
)

// DefaultAssumptions describes the built-in rules
var DefaultAssumptions = DescribeRules(calculation.DefaultFiscalRules())

// DescribeRules lists the key figures of a rule set for report headers
func DescribeRules(rules domain.FiscalRules) []string {
	return []string{
		fmt.Sprintf("IMT tables: %d (%s)", rules.Metadata.DataYear, rules.Metadata.Description),
		fmt.Sprintf("Island reduction (Madeira, Azores): %s", FormatRate(rules.IslandReduction)),
		fmt.Sprintf("Stamp duty on acquisition: %s", FormatRate(rules.StampDuty.AcquisitionRate)),
		fmt.Sprintf("Stamp duty on loans: %s", FormatRate(rules.StampDuty.LoanRate)),
		"Amounts rounded to cents half away from zero",
	}
}
