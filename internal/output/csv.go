package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/domain"
)

// CSVFormatter writes one row per property
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Type", "Location", "District", "PropertyValue", "LoanAmount", "IMT", "EffectiveRate", "AcquisitionStampDuty", "LoanStampDuty", "TotalTaxes", "TotalCost", "AreaM2", "AreaFt2", "PricePerM2", "Warnings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		costs := row.Costs
		record := []string{
			row.Entry.Name,
			string(costs.IMT.PropertyType),
			string(costs.IMT.Location),
			row.Entry.District,
			row.Entry.Value.StringFixed(2),
			row.Entry.Loan.StringFixed(2),
			costs.IMT.IMT.StringFixed(2),
			costs.IMT.Rate.StringFixed(2),
			costs.AcquisitionStampDuty.StringFixed(2),
			costs.LoanStampDuty.StringFixed(2),
			costs.TotalTaxes.StringFixed(2),
			costs.TotalCost.StringFixed(2),
			row.Entry.AreaM2.StringFixed(2),
			row.AreaFt2.StringFixed(2),
			row.PricePerM2.StringFixed(2),
			strings.Join(row.Warnings, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
