package tui

import "github.com/rgehrsitz/imtgo/internal/domain"

// Field identifies the text input that has focus
type Field int

const (
	FieldValue Field = iota
	FieldLoan
)

func (f Field) String() string {
	switch f {
	case FieldValue:
		return "Property value"
	case FieldLoan:
		return "Loan amount"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// RulesLoadedMsg carries fiscal rules read from a file
type RulesLoadedMsg struct {
	Rules *domain.FiscalRules
	Path  string
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
