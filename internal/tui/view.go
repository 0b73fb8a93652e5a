package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/rgehrsitz/imtgo/internal/output"
	"github.com/rgehrsitz/imtgo/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}
	if m.showHelp {
		return m.renderApp(m.renderHelp())
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderInputs(),
		"",
		m.renderSelectors(),
		"",
		m.renderResults(),
	)
	return m.renderApp(body)
}

// renderApp wraps content with the title and status bars
func (m Model) renderApp(content string) string {
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("IMTGO - Portuguese Property Transfer Tax")
	rules := SubtitleStyle.Render(fmt.Sprintf("Rules: %d", m.calc.Rules.Metadata.DataYear))
	if m.rulesPath != "" {
		rules = SubtitleStyle.Render(fmt.Sprintf("Rules: %d (%s)", m.calc.Rules.Metadata.DataYear, m.rulesPath))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rules, "")
}

func (m Model) renderInputs() string {
	field := func(f Field, view string) string {
		style := BorderStyle
		if m.focus == f {
			style = ActiveBorderStyle
		}
		return style.Render(SubtitleStyle.Render(f.String()) + "\n" + view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		field(FieldValue, m.valueInput.View()),
		" ",
		field(FieldLoan, m.loanInput.View()),
	)
}

func (m Model) renderSelectors() string {
	types := make([]string, len(domain.PropertyTypes))
	for i, pt := range domain.PropertyTypes {
		types[i] = selectorItem(string(pt), i == m.typeIndex)
	}
	locations := make([]string, len(domain.Locations))
	for i, loc := range domain.Locations {
		locations[i] = selectorItem(string(loc), i == m.locationIndex)
	}
	return "Type:     " + strings.Join(types, "  ") + "\n" +
		"Location: " + strings.Join(locations, "  ")
}

func selectorItem(label string, selected bool) string {
	if selected {
		return SelectedItemStyle.Render("[" + label + "]")
	}
	return UnselectedItemStyle.Render(" " + label + " ")
}

func (m Model) renderResults() string {
	if m.inputErr != "" {
		return ErrorStyle.Render(m.inputErr)
	}
	if m.costs == nil {
		return InfoStyle.Render("Enter a property value to see the taxes due")
	}
	if !m.costs.IMT.Valid() {
		return ErrorStyle.Render(m.costs.IMT.Details)
	}

	c := m.costs
	cards := []*components.MetricCard{
		components.NewMetricCard("IMT", FormatCurrency(c.IMT.IMT)).
			WithDescription("effective " + output.FormatPercentage(c.IMT.Rate)).
			WithHighlight(),
		components.NewMetricCard("Stamp duty", FormatCurrency(c.AcquisitionStampDuty.Add(c.LoanStampDuty))).
			WithDescription(fmt.Sprintf("deed %s, loan %s", c.AcquisitionStampDuty.StringFixed(2), c.LoanStampDuty.StringFixed(2))),
		components.NewMetricCard("Total taxes", FormatCurrency(c.TotalTaxes)).
			WithDescription("total " + FormatCurrency(c.TotalCost)),
	}
	if c.IMT.Location.IsIsland() {
		cards[0].WithDescription("effective " + output.FormatPercentage(c.IMT.Rate) + ", island -" + c.IMT.IslandReduction)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 3),
		"",
		m.renderBreakdown(),
	)
}

func (m Model) renderBreakdown() string {
	chart := components.NewBarChart("Tax by bracket (before island reduction)")
	for _, p := range m.breakdown {
		label := fmt.Sprintf("%s @ %s", bracketRange(p), output.FormatRate(p.Rate))
		tax, _ := p.Tax.Float64()
		chart.Add(label, tax, p.Tax.StringFixed(2))
	}
	return chart.Render()
}

func bracketRange(p domain.BracketContribution) string {
	if p.Max == nil {
		return "> " + p.Min.StringFixed(0)
	}
	return p.Min.StringFixed(0) + "-" + p.Max.StringFixed(0)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "switch field"),
		formatShortcut("t/T", "type"),
		formatShortcut("l/L", "location"),
		formatShortcut("ctrl+u", "clear"),
		formatShortcut("?", "help"),
		formatShortcut("esc", "quit"),
	}
	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err))
}

func (m Model) renderHelp() string {
	helpText := `
IMTGO - Portuguese Property Transfer Tax

KEYBOARD SHORTCUTS:
  tab/↑/↓  Switch between property value and loan amount
  t / T    Next / previous property type
  l / L    Next / previous location
  ctrl+u   Clear the focused field
  ?        Toggle this help
  esc      Quit

Values accept "250000", "250 000" or "250000,50".
IMT is reduced for Madeira and the Azores.
Stamp duty covers the deed and, when a loan is given, the mortgage.
`
	return BorderStyle.Render(helpText)
}
