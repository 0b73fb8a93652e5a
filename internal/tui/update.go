package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RulesLoadedMsg:
		m.calc = calculation.NewCalculatorWithRules(*msg.Rules)
		m.recalculate()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.NextType):
		m.typeIndex = (m.typeIndex + 1) % len(domain.PropertyTypes)
	case key.Matches(msg, m.keys.PrevType):
		m.typeIndex = (m.typeIndex + len(domain.PropertyTypes) - 1) % len(domain.PropertyTypes)
	case key.Matches(msg, m.keys.NextLocation):
		m.locationIndex = (m.locationIndex + 1) % len(domain.Locations)
	case key.Matches(msg, m.keys.PrevLocation):
		m.locationIndex = (m.locationIndex + len(domain.Locations) - 1) % len(domain.Locations)

	case key.Matches(msg, m.keys.Clear):
		if m.focus == FieldValue {
			m.valueInput.SetValue("")
		} else {
			m.loanInput.SetValue("")
		}

	default:
		return m.updateFocusedInput(msg)
	}

	m.recalculate()
	return m, nil
}

// updateFocusedInput forwards msg to the focused text input and recalculates
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FieldValue {
		m.valueInput, cmd = m.valueInput.Update(msg)
	} else {
		m.loanInput, cmd = m.loanInput.Update(msg)
	}
	m.recalculate()
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == FieldValue {
		m.focus = FieldLoan
		m.valueInput.Blur()
		m.loanInput.Focus()
		return
	}
	m.focus = FieldValue
	m.loanInput.Blur()
	m.valueInput.Focus()
}

// recalculate refreshes the results from the current inputs
func (m *Model) recalculate() {
	m.inputErr = ""
	m.costs = nil
	m.breakdown = nil

	valueText := m.valueInput.Value()
	if strings.TrimSpace(valueText) == "" {
		return
	}
	value, err := parseAmount(valueText)
	if err != nil {
		m.inputErr = "Property value " + err.Error()
		return
	}
	loan := decimal.Zero
	if strings.TrimSpace(m.loanInput.Value()) != "" {
		if loan, err = parseAmount(m.loanInput.Value()); err != nil {
			m.inputErr = "Loan amount " + err.Error()
			return
		}
	}

	costs := m.calc.CalculatePurchaseCosts(value, loan, m.PropertyType(), m.Location())
	m.costs = &costs
	m.breakdown = m.calc.Breakdown(value, m.PropertyType())
}

// parseAmount accepts digits grouped with spaces, underscores, dots or
// commas. When both "." and "," appear the last one is the decimal
// separator; a single separator used more than once is grouping.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(" ", "", "_", "", "\u00a0", "").Replace(strings.TrimSpace(s))

	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ",") > 1:
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("must be a number")
	}
	if err := domain.CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
