package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/config"
	"github.com/rgehrsitz/imtgo/internal/domain"
)

// Model represents the calculator state
type Model struct {
	width  int
	height int

	rulesPath string
	calc      *calculation.Calculator

	valueInput textinput.Model
	loanInput  textinput.Model
	focus      Field

	typeIndex     int
	locationIndex int

	// Latest results; nil until a positive value has been entered
	costs     *domain.PurchaseCosts
	breakdown []domain.BracketContribution
	inputErr  string

	showHelp bool
	keys     keyMap
	err      error
}

type keyMap struct {
	Quit         key.Binding
	NextField    key.Binding
	NextType     key.Binding
	PrevType     key.Binding
	NextLocation key.Binding
	PrevLocation key.Binding
	Help         key.Binding
	Clear        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		NextField:    key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"), key.WithHelp("tab", "switch field")),
		NextType:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "property type")),
		PrevType:     key.NewBinding(key.WithKeys("T")),
		NextLocation: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "location")),
		PrevLocation: key.NewBinding(key.WithKeys("L")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Clear:        key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear field")),
	}
}

// NewModel creates the calculator model. A non-empty rulesPath is loaded on
// Init; until then the built-in rules apply.
func NewModel(rulesPath string) Model {
	value := textinput.New()
	value.Placeholder = "e.g. 250.000,00"
	value.CharLimit = 15
	value.Width = 20
	value.Focus()

	loan := textinput.New()
	loan.Placeholder = "0"
	loan.CharLimit = 15
	loan.Width = 20

	return Model{
		width:      80,
		height:     24,
		rulesPath:  rulesPath,
		calc:       calculation.NewCalculator(),
		valueInput: value,
		loanInput:  loan,
		focus:      FieldValue,
		keys:       defaultKeyMap(),
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.rulesPath == "" {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, loadRulesCmd(m.rulesPath))
}

// loadRulesCmd returns a command that loads a fiscal rules file
func loadRulesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		rules, err := config.NewRulesParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RulesLoadedMsg{Rules: rules, Path: path}
	}
}

// PropertyType returns the selected property type
func (m Model) PropertyType() domain.PropertyType {
	return domain.PropertyTypes[m.typeIndex]
}

// Location returns the selected location
func (m Model) Location() domain.Location {
	return domain.Locations[m.locationIndex]
}

// Costs returns the latest calculation, or nil
func (m Model) Costs() *domain.PurchaseCosts {
	return m.costs
}
