package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/imtgo/internal/tui/tuistyles"
)

// Bar is one labelled value in a BarChart
type Bar struct {
	Label string
	Value float64
	Note  string
}

// BarChart draws horizontal bars scaled to the largest value
type BarChart struct {
	Title    string
	Bars     []Bar
	BarWidth int
}

// NewBarChart creates a chart with a default bar width
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, BarWidth: 30}
}

// Add appends a bar
func (c *BarChart) Add(label string, value float64, note string) *BarChart {
	c.Bars = append(c.Bars, Bar{Label: label, Value: value, Note: note})
	return c
}

// Render returns the chart, or a placeholder when there are no bars
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		b.WriteString("\n")
	}

	labelWidth := 0
	maxValue := 0.0
	for _, bar := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		maxValue = max(maxValue, bar.Value)
	}

	fill := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	for _, bar := range c.Bars {
		n := 0
		if maxValue > 0 {
			n = int(bar.Value / maxValue * float64(c.BarWidth))
		}
		if n == 0 && bar.Value > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%-*s %s%s %s\n",
			labelWidth, bar.Label,
			fill.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", c.BarWidth-n),
			bar.Note)
	}
	return strings.TrimRight(b.String(), "\n")
}
