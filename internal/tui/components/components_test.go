package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarChart_Render(t *testing.T) {
	chart := NewBarChart("Tax by bracket").
		Add("0-97064", 0, "0.00").
		Add("97064-115038", 359.48, "359.48").
		Add("115038-133495", 922.85, "922.85")
	chart.BarWidth = 10

	out := chart.Render()
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Tax by bracket")
	assert.Equal(t, 0, strings.Count(lines[1], "█"))
	assert.Equal(t, 3, strings.Count(lines[2], "█"))
	assert.Equal(t, 10, strings.Count(lines[3], "█"))
	assert.Contains(t, lines[3], "922.85")
}

func TestBarChart_Empty(t *testing.T) {
	assert.Contains(t, NewBarChart("x").Render(), "No data")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("IMT", "€58.72").WithDescription("effective 0.06%").WithWidth(30)

	assert.Contains(t, card.Render(), "€58.72")
	assert.Contains(t, card.Render(), "effective 0.06%")
	assert.Contains(t, card.RenderCompact(), "IMT:")

	grid := MetricGrid([]*MetricCard{card, NewMetricCard("Stamp", "€0.00"), NewMetricCard("Total", "€58.72")}, 2)
	assert.Contains(t, grid, "Stamp")
	assert.Empty(t, MetricGrid(nil, 2))
}
