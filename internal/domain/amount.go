package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Accepted amounts lie within ±MaxAmount with at most MaxAmountScale
// decimal places. Every calculation on an accepted amount works on numbers
// of bounded size.
const (
	MaxAmountExponent = 15
	MaxAmountScale    = 10
)

// MaxAmount is the largest magnitude accepted for values, loans, budgets
// and areas (10^15)
var MaxAmount = decimal.New(1, MaxAmountExponent)

// CheckAmount rejects amounts too large or too finely divided to be a
// price or an area. The exponent is checked before any comparison since
// comparing rescales both operands.
func CheckAmount(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp > MaxAmountExponent {
		return fmt.Errorf("amount exceeds the limit of %s", MaxAmount.String())
	}
	if exp < -MaxAmountScale {
		return fmt.Errorf("amount has more than %d decimal places", MaxAmountScale)
	}
	if d.Abs().Cmp(MaxAmount) > 0 {
		return fmt.Errorf("amount exceeds the limit of %s", MaxAmount.String())
	}
	return nil
}
