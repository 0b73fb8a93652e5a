package breakeven

import (
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// AffordabilityRequest describes a buyer's cash budget. Budget covers the
// purchase price plus every tax due on the deed and the loan.
type AffordabilityRequest struct {
	Budget       decimal.Decimal     `json:"budget"`
	LoanAmount   decimal.Decimal     `json:"loanAmount"`
	PropertyType domain.PropertyType `json:"propertyType"`
	Location     domain.Location     `json:"location"`
}

// AffordabilityResult is the highest price whose total cost fits the budget
type AffordabilityResult struct {
	Request          AffordabilityRequest `json:"request"`
	Feasible         bool                 `json:"feasible"`
	MaxPropertyValue decimal.Decimal      `json:"maxPropertyValue"`
	Costs            domain.PurchaseCosts `json:"costs"`
	Headroom         decimal.Decimal      `json:"headroom"`
	Bracket          int                  `json:"bracket"`
	Iterations       int                  `json:"iterations"`
}

// SolverOptions configures the bisection
type SolverOptions struct {
	MaxIterations int             // per bracket segment
	Step          decimal.Decimal // price resolution
}

// DefaultSolverOptions returns cent resolution with enough iterations for
// budgets well beyond any real property price
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 64,
		Step:          decimal.New(1, -2),
	}
}

// Validate checks the request before solving
func (r AffordabilityRequest) Validate() error {
	if !r.Budget.IsPositive() {
		return &SolverError{Operation: "validate_request", Message: "budget must be positive"}
	}
	if r.LoanAmount.IsNegative() {
		return &SolverError{Operation: "validate_request", Message: "loan cannot be negative"}
	}
	if _, ok := r.PropertyType.ScheduleName(); !ok {
		return &SolverError{Operation: "validate_request", Message: "unknown property type " + string(r.PropertyType)}
	}
	return nil
}

// SolverError represents errors from the affordability solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
