package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesParser_LoadFromFile(t *testing.T) {
	rules, err := NewRulesParser().LoadFromFile("testdata/fiscal_rules.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2025, rules.Metadata.DataYear)
	assert.True(t, decimal.RequireFromString("0.25").Equal(rules.IslandReduction))

	residential := rules.Schedules[domain.ScheduleResidential]
	require.Len(t, residential.Brackets, 7)
	assert.True(t, residential.Brackets[6].Unbounded())
	assert.True(t, residential.Brackets[6].WholeValue)

	// Schedules absent from the file keep their defaults
	defaults := calculation.DefaultFiscalRules()
	assert.Equal(t, len(defaults.Schedules[domain.ScheduleSecondaryHome].Brackets), len(rules.Schedules[domain.ScheduleSecondaryHome].Brackets))
	assert.Contains(t, rules.Schedules, domain.ScheduleCommercialOrLand)

	calc := calculation.NewCalculatorWithRules(*rules)
	result := calc.CalculateIMT(decimal.NewFromInt(100000), domain.PropertyResidential, domain.LocationMainland)
	assert.True(t, result.IMT.IsZero(), "raised exemption threshold should apply")
	assert.Equal(t, "25%", calc.CalculateIMT(decimal.NewFromInt(1), domain.PropertyLand, domain.LocationAzores).IslandReduction)
}

func TestRulesParser_LoadFromFile_Missing(t *testing.T) {
	_, err := NewRulesParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestRulesParser_Parse_EmptyKeepsDefaults(t *testing.T) {
	rules, err := NewRulesParser().Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, 2024, rules.Metadata.DataYear)
	assert.Len(t, rules.Schedules, 3)
}

func TestRulesParser_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "schedules: [",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "island reduction above one",
			yaml:    "island_reduction: 1.5",
			wantErr: "island_reduction must be between 0 and 1",
		},
		{
			name:    "negative loan rate",
			yaml:    "stamp_duty:\n  loan_rate: -0.1\n  acquisition_rate: 0.008",
			wantErr: "stamp_duty.loan_rate",
		},
		{
			name: "gap between brackets",
			yaml: `schedules:
  residential:
    brackets:
      - { min: 0, max: 1000, rate: 0 }
      - { min: 2000, rate: 0.05 }`,
			wantErr: "next bracket starts at 2000",
		},
		{
			name: "bounded last bracket",
			yaml: `schedules:
  commercial-or-land:
    brackets:
      - { min: 0, max: 1000, rate: 0.065, whole_value: true }`,
			wantErr: "last bracket must be unbounded",
		},
		{
			name:    "bad data year",
			yaml:    "metadata:\n  data_year: 1900",
			wantErr: "data_year 1900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRulesParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRulesParser_ValidateRules_MissingSchedule(t *testing.T) {
	rules := calculation.DefaultFiscalRules()
	delete(rules.Schedules, domain.ScheduleSecondaryHome)

	err := NewRulesParser().ValidateRules(&rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"secondary-home" is required`)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
