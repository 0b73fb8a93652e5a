package ptutil

import (
	"strings"
	"testing"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidatePortugueseZipCode(t *testing.T) {
	tests := []struct {
		zip  string
		want bool
	}{
		{"1000-001", true},
		{"4050-123", true},
		{"9500-000", true},
		{"1000001", false},
		{"1000-01", false},
		{"10000-001", false},
		{"1000-0011", false},
		{" 1000-001", false},
		{"1000-001 ", false},
		{"1000-001\n", false},
		{"abcd-efg", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePortugueseZipCode(tt.zip))
		})
	}
}

func TestSquareMetersToFeet(t *testing.T) {
	got, _ := SquareMetersToFeet(decimal.NewFromInt(100)).Float64()
	assert.InDelta(t, 1076.4, got, 0.01)

	got, _ = SquareMetersToFeet(decimal.RequireFromString("85.5")).Float64()
	assert.InDelta(t, 920.32, got, 0.01)

	assert.True(t, SquareMetersToFeet(decimal.Zero).IsZero())
}

func TestSquareFeetToMeters(t *testing.T) {
	got, _ := SquareFeetToMeters(decimal.NewFromInt(1000)).Float64()
	assert.InDelta(t, 92.9, got, 0.01)
}

func TestAreaRoundTripWithinTolerance(t *testing.T) {
	for _, m := range []string{"1", "33.3", "75", "120.45", "999.99"} {
		original := decimal.RequireFromString(m)
		back := SquareFeetToMeters(SquareMetersToFeet(original))
		diff, _ := back.Sub(original).Abs().Float64()
		assert.LessOrEqual(t, diff, 0.01, m)
	}
}

// digitsOnly strips separator glyphs so assertions do not depend on the
// grouping character chosen by the locale data.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatPortuguesePrice(t *testing.T) {
	tests := []struct {
		amount string
		digits string
	}{
		{"0", "0,00"},
		{"12.5", "12,50"},
		{"1250000", "1250000,00"},
		{"350000.456", "350000,46"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := FormatPortuguesePrice(decimal.RequireFromString(tt.amount))
			assert.True(t, strings.HasSuffix(got, "€"), got)
			assert.Equal(t, tt.digits, digitsOnly(got))
		})
	}
}


func TestFormatPortuguesePrice_Exact(t *testing.T) {
	g, d := ptGroupSep, ptDecimalSep
	tests := []struct {
		amount string
		want   string
	}{
		{"1000", "1000" + d + "00"},
		{"9999.99", "9999" + d + "99"},
		{"10000", "10" + g + "000" + d + "00"},
		{"1250000", "1" + g + "250" + g + "000" + d + "00"},
		{"-1500.5", "-1500" + d + "50"},
		{"-0.004", "0" + d + "00"},
		{"12345678901234567.89", "12" + g + "345" + g + "678" + g + "901" + g + "234" + g + "567" + d + "89"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want+EuroSign, FormatPortuguesePrice(decimal.RequireFromString(tt.amount)))
		})
	}

	huge := FormatPortuguesePrice(decimal.RequireFromString("1e400"))
	assert.True(t, strings.HasPrefix(huge, "10"+g+"000"+g), huge)
	assert.NotContains(t, huge, "∞")
}

func TestPtSeparators(t *testing.T) {
	assert.Equal(t, ",", ptDecimalSep)
	assert.NotEmpty(t, ptGroupSep)
	assert.NotContains(t, ptGroupSep, ",")
}
