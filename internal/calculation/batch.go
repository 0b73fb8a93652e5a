package calculation

import (
	"fmt"

	"github.com/rgehrsitz/imtgo/internal/district"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/rgehrsitz/imtgo/pkg/ptutil"
	"github.com/shopspring/decimal"
)

// RunBatch evaluates every property in the input. Problems with a single
// entry (bad zip code, unknown district, invalid value) become warnings on
// that row; the batch itself never fails.
func (c *Calculator) RunBatch(input *domain.BatchInput) *domain.BatchReport {
	report := &domain.BatchReport{
		Title:     input.Metadata.Title,
		RulesYear: c.Rules.Metadata.DataYear,
		Rows:      make([]domain.BatchRow, 0, len(input.Properties)),
		Totals: domain.BatchTotals{
			PropertyValue: decimal.Zero,
			IMT:           decimal.Zero,
			StampDuty:     decimal.Zero,
			TotalTaxes:    decimal.Zero,
		},
	}

	for _, entry := range input.Properties {
		row := c.evaluateEntry(entry)
		report.Rows = append(report.Rows, row)

		if !row.Costs.IMT.Valid() {
			continue
		}
		report.Totals.PropertyValue = report.Totals.PropertyValue.Add(entry.Value)
		report.Totals.IMT = report.Totals.IMT.Add(row.Costs.IMT.IMT)
		report.Totals.StampDuty = report.Totals.StampDuty.Add(row.Costs.AcquisitionStampDuty).Add(row.Costs.LoanStampDuty)
		report.Totals.TotalTaxes = report.Totals.TotalTaxes.Add(row.Costs.TotalTaxes)
	}

	c.Logger.Infof("evaluated %d properties, total IMT %s", len(report.Rows), report.Totals.IMT)
	return report
}

func (c *Calculator) evaluateEntry(entry domain.BatchEntry) domain.BatchRow {
	var warnings []string

	location := entry.Location
	if entry.District != "" {
		if _, ok := district.GetDistrictInfo(entry.District); !ok {
			warnings = append(warnings, fmt.Sprintf("unknown district %q", entry.District))
		} else if location == "" {
			location = district.LocationFor(entry.District)
		}
	}
	if entry.ZipCode != "" && !ptutil.ValidatePortugueseZipCode(entry.ZipCode) {
		warnings = append(warnings, fmt.Sprintf("invalid postal code %q", entry.ZipCode))
	}
	if _, ok := entry.Type.ScheduleName(); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown property type %q, IMT not computed", entry.Type))
	}

	costs := c.CalculatePurchaseCosts(entry.Value, entry.Loan, entry.Type, location)
	if !costs.IMT.Valid() {
		warnings = append(warnings, costs.IMT.Details)
	}

	row := domain.BatchRow{
		Entry:          entry,
		Costs:          costs,
		AreaFt2:        ptutil.SquareMetersToFeet(entry.AreaM2),
		PricePerM2:     decimal.Zero,
		FormattedPrice: ptutil.FormatPortuguesePrice(entry.Value),
		Warnings:       warnings,
	}
	if entry.AreaM2.IsPositive() && entry.Value.IsPositive() {
		row.PricePerM2 = roundCurrency(entry.Value.Div(entry.AreaM2))
	}
	return row
}
