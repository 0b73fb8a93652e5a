package calculation

import (
	"testing"

	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateStampDuty(t *testing.T) {
	tests := []struct {
		loan string
		want string
	}{
		{"200000", "1200"},
		{"0", "0"},
		{"-5000", "0"},
		{"123456.78", "740.74"},
		{"1000.75", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.loan, func(t *testing.T) {
			assertDecimal(t, tt.want, CalculateStampDuty(dec(tt.loan)))
		})
	}
}

func TestCalculatePurchaseCosts(t *testing.T) {
	calc := NewCalculator()

	costs := calc.CalculatePurchaseCosts(dec("300000"), dec("240000"), domain.PropertyResidential, domain.LocationMainland)

	assertDecimal(t, "14174.58", costs.IMT.IMT)
	assertDecimal(t, "2400", costs.AcquisitionStampDuty)
	assertDecimal(t, "1440", costs.LoanStampDuty)
	assertDecimal(t, "18014.58", costs.TotalTaxes)
	assertDecimal(t, "318014.58", costs.TotalCost)
}

func TestCalculatePurchaseCosts_NoLoan(t *testing.T) {
	costs := NewCalculator().CalculatePurchaseCosts(dec("50000"), decimal.Zero, domain.PropertyLand, domain.LocationAzores)

	assertDecimal(t, "2600", costs.IMT.IMT)
	assertDecimal(t, "400", costs.AcquisitionStampDuty)
	assert.True(t, costs.LoanStampDuty.IsZero())
	assertDecimal(t, "3000", costs.TotalTaxes)
}

func TestCalculatePurchaseCosts_InvalidValue(t *testing.T) {
	costs := NewCalculator().CalculatePurchaseCosts(decimal.Zero, dec("100000"), domain.PropertyResidential, domain.LocationMainland)

	assert.False(t, costs.IMT.Valid())
	assert.True(t, costs.LoanStampDuty.IsZero())
	assert.True(t, costs.TotalTaxes.IsZero())
	assert.True(t, costs.TotalCost.IsZero())
}
