// Package ptutil contains small helpers for Portuguese listings: postal
// code validation, EUR price formatting and area unit conversion.
package ptutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// SquareFeetPerSquareMeter is the conversion factor used for listings
var SquareFeetPerSquareMeter = decimal.RequireFromString("10.764")

var zipCodePattern = regexp.MustCompile(`^\d{4}-\d{3}$`)

// ValidatePortugueseZipCode reports whether zip has the CP7 form
// "DDDD-DDD". Surrounding whitespace is not tolerated.
func ValidatePortugueseZipCode(zip string) bool {
	return zipCodePattern.MatchString(zip)
}

// SquareMetersToFeet converts m² to ft², rounded to two decimals
func SquareMetersToFeet(m decimal.Decimal) decimal.Decimal {
	return m.Mul(SquareFeetPerSquareMeter).Round(2)
}

// SquareFeetToMeters converts ft² to m², rounded to two decimals. The two
// conversions are not exact inverses once rounded.
func SquareFeetToMeters(f decimal.Decimal) decimal.Decimal {
	return f.Div(SquareFeetPerSquareMeter).Round(2)
}

// EuroSign follows the amount, separated by a no-break space as in pt-PT
const EuroSign = "\u00a0€"

// CurrencyCode is the ISO 4217 code of every formatted price
const CurrencyCode = "EUR"

var ptPrinter = message.NewPrinter(language.EuropeanPortuguese)

// pt-PT separator glyphs as rendered by the CLDR data in golang.org/x/text
var ptGroupSep, ptDecimalSep = ptSeparators()

func ptSeparators() (group, dec string) {
	var runs []string
	var cur strings.Builder
	for _, r := range ptPrinter.Sprint(number.Decimal(1234567.5, number.Scale(1))) {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if len(runs) < 2 {
		return "\u00a0", ","
	}
	return runs[0], runs[len(runs)-1]
}

// FormatPortuguesePrice renders amount with pt-PT separators and two
// decimals, e.g. "1 250 000,00 €". Digits come from the exact decimal so
// no precision is lost at any magnitude. As in pt-PT, four-digit integer
// parts are not grouped ("1000,00 €").
func FormatPortuguesePrice(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(intPart))
	b.WriteString(ptDecimalSep)
	b.WriteString(frac)
	b.WriteString(EuroSign)
	return b.String()
}

// groupDigits inserts the group separator every three digits from the
// right, leaving integers below 10000 ungrouped
func groupDigits(digits string) string {
	if len(digits) < 5 {
		return digits
	}
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(ptGroupSep)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
