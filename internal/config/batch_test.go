package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchParser_LoadFromFile(t *testing.T) {
	input, err := NewBatchParser().LoadFromFile("testdata/batch_example.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Lisbon shortlist", input.Metadata.Title)
	require.Len(t, input.Properties, 3)

	first := input.Properties[0]
	assert.Equal(t, "T2 Benfica", first.Name)
	assert.Equal(t, "300000", first.Value.String())
	assert.Equal(t, "240000", first.Loan.String())
	assert.Equal(t, "80", first.AreaM2.String())
	assert.Equal(t, "1500-100", first.ZipCode)

	assert.Empty(t, input.Properties[1].Location)
	assert.Equal(t, "Madeira", input.Properties[1].District)
}

func TestBatchParser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no properties", "metadata:\n  title: empty\n", "at least one property"},
		{"missing name", "properties:\n  - value: 1000\n", "name is required"},
		{"duplicate name", "properties:\n  - name: a\n    value: 1\n  - name: a\n    value: 2\n", `duplicate name "a"`},
		{"negative loan", "properties:\n  - name: a\n    value: 1\n    loan: -5\n", "loan cannot be negative"},
		{"negative area", "properties:\n  - name: a\n    value: 1\n    area_m2: -5\n", "area cannot be negative"},
		{"huge value", "properties:\n  - name: a\n    value: 1e20000000\n", "value: amount exceeds the limit"},
		{"huge loan", "properties:\n  - name: a\n    value: 1\n    loan: \"1e400\"\n", "loan: amount exceeds the limit"},
		{"malformed", "properties: {", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "batch.yaml", tt.yaml)
			_, err := NewBatchParser().LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
