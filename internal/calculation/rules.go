package calculation

import (
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// FISCAL TABLE ASSUMPTIONS:
//
// 1. IMT brackets: 2024 mainland tables (Portaria / OE 2024)
//    - Upper bounds are inclusive ("até 97 064 €")
//    - Above 633,453 € a single 6% rate applies to the whole value
//
// 2. Commercial property and land: 6.5% flat
//
// 3. Madeira and Azores: 20% reduction on the computed IMT
//
// 4. Imposto do Selo: 0.6% on mortgage loans, 0.8% on the acquisition value

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// progressiveBrackets builds the 2024 marginal table with the given rate
// on the first bracket (0% for own permanent residence, 1% otherwise)
func progressiveBrackets(firstRate decimal.Decimal) []domain.TaxBracket {
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: bound(97064), Rate: firstRate},
		{Min: decimal.NewFromInt(97064), Max: bound(115038), Rate: decimal.NewFromFloat(0.02)},
		{Min: decimal.NewFromInt(115038), Max: bound(133495), Rate: decimal.NewFromFloat(0.05)},
		{Min: decimal.NewFromInt(133495), Max: bound(176310), Rate: decimal.NewFromFloat(0.07)},
		{Min: decimal.NewFromInt(176310), Max: bound(633453), Rate: decimal.NewFromFloat(0.08)},
		{Min: decimal.NewFromInt(633453), Rate: decimal.NewFromFloat(0.06), WholeValue: true},
	}
}

// DefaultFiscalRules returns the 2024 tables. Each call builds a fresh
// copy so callers may modify the result.
func DefaultFiscalRules() domain.FiscalRules {
	return domain.FiscalRules{
		Metadata: domain.RulesMetadata{
			DataYear:    2024,
			LastUpdated: "2024-01-01",
			Description: "IMT and Imposto do Selo tables for 2024",
		},
		Schedules: map[string]domain.FiscalSchedule{
			domain.ScheduleResidential: {
				Description: "Own permanent residence",
				Brackets:    progressiveBrackets(decimal.Zero),
			},
			domain.ScheduleSecondaryHome: {
				Description: "Secondary or rental home",
				Brackets:    progressiveBrackets(decimal.NewFromFloat(0.01)),
			},
			domain.ScheduleCommercialOrLand: {
				Description: "Commercial property and land",
				Brackets: []domain.TaxBracket{
					{Min: decimal.Zero, Rate: decimal.NewFromFloat(0.065), WholeValue: true},
				},
			},
		},
		IslandReduction: decimal.NewFromFloat(0.20),
		StampDuty: domain.StampDutyRules{
			LoanRate:        decimal.NewFromFloat(0.006),
			AcquisitionRate: decimal.NewFromFloat(0.008),
		},
	}
}
