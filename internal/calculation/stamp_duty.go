package calculation

import (
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateStampDuty computes Imposto do Selo on a mortgage loan with the
// 2024 rate
func CalculateStampDuty(loanAmount decimal.Decimal) decimal.Decimal {
	return defaultCalculator.CalculateStampDuty(loanAmount)
}

// CalculateStampDuty returns loanAmount × loan rate rounded to cents, or
// zero for a non-positive loan
func (c *Calculator) CalculateStampDuty(loanAmount decimal.Decimal) decimal.Decimal {
	if !loanAmount.IsPositive() {
		return decimal.Zero
	}
	return roundCurrency(loanAmount.Mul(c.Rules.StampDuty.LoanRate))
}

// CalculateAcquisitionStampDuty returns the stamp duty due on the purchase
// deed itself
func (c *Calculator) CalculateAcquisitionStampDuty(propertyValue decimal.Decimal) decimal.Decimal {
	if !propertyValue.IsPositive() {
		return decimal.Zero
	}
	return roundCurrency(propertyValue.Mul(c.Rules.StampDuty.AcquisitionRate))
}

// CalculatePurchaseCosts combines IMT with both stamp duties. An invalid
// property value returns the invalid IMT result and zero totals.
func (c *Calculator) CalculatePurchaseCosts(propertyValue, loanAmount decimal.Decimal, propertyType domain.PropertyType, location domain.Location) domain.PurchaseCosts {
	imt := c.CalculateIMT(propertyValue, propertyType, location)
	costs := domain.PurchaseCosts{
		PropertyValue:        propertyValue,
		LoanAmount:           loanAmount,
		IMT:                  imt,
		AcquisitionStampDuty: decimal.Zero,
		LoanStampDuty:        decimal.Zero,
		TotalTaxes:           decimal.Zero,
		TotalCost:            decimal.Zero,
	}
	if !imt.Valid() {
		return costs
	}

	costs.AcquisitionStampDuty = c.CalculateAcquisitionStampDuty(propertyValue)
	costs.LoanStampDuty = c.CalculateStampDuty(loanAmount)
	costs.TotalTaxes = imt.IMT.Add(costs.AcquisitionStampDuty).Add(costs.LoanStampDuty)
	costs.TotalCost = propertyValue.Add(costs.TotalTaxes)

	c.Logger.Debugf("purchase costs for %s: IMT %s, selo %s + %s", propertyValue, imt.IMT, costs.AcquisitionStampDuty, costs.LoanStampDuty)
	return costs
}
