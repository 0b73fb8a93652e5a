package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Solver finds the most expensive property a budget can buy
type Solver struct {
	Calc    *calculation.Calculator
	Options SolverOptions
}

// NewSolver creates a new affordability solver
func NewSolver(calc *calculation.Calculator, options SolverOptions) *Solver {
	return &Solver{Calc: calc, Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calc *calculation.Calculator) *Solver {
	return NewSolver(calc, DefaultSolverOptions())
}

type segment struct {
	bracket int
	lo, hi  decimal.Decimal
}

// MaxPropertyValue returns the highest price, to the solver step, whose
// total cost stays within the budget.
//
// Total cost rises with the price inside each bracket but can fall where a
// whole-value bracket takes over, so every bracket is searched separately
// and the highest feasible price wins.
func (s *Solver) MaxPropertyValue(ctx context.Context, req AffordabilityRequest) (*AffordabilityResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.PropertyType = req.PropertyType.OrDefault()
	req.Location = req.Location.OrDefault()

	result := &AffordabilityResult{
		Request:          req,
		MaxPropertyValue: decimal.Zero,
		Headroom:         req.Budget,
		Bracket:          -1,
	}

	for _, seg := range s.segments(req) {
		value, iterations, err := s.searchSegment(ctx, req, seg)
		result.Iterations += iterations
		if err != nil {
			return nil, err
		}
		if value.IsPositive() && value.GreaterThan(result.MaxPropertyValue) {
			result.Feasible = true
			result.MaxPropertyValue = value
			result.Bracket = seg.bracket
		}
	}

	if result.Feasible {
		result.Costs = s.cost(req, result.MaxPropertyValue)
		result.Headroom = req.Budget.Sub(result.Costs.TotalCost)
	}
	s.Calc.Logger.Debugf("affordability for budget %s: %s after %d iterations", req.Budget, result.MaxPropertyValue, result.Iterations)
	return result, nil
}

// segments splits (0, budget] at the schedule's bracket bounds
func (s *Solver) segments(req AffordabilityRequest) []segment {
	step := s.Options.Step
	schedule, ok := s.Calc.Schedule(req.PropertyType)
	if !ok || len(schedule.Brackets) == 0 {
		return []segment{{bracket: 0, lo: step, hi: req.Budget}}
	}

	var out []segment
	for i, b := range schedule.Brackets {
		lo := b.Min.Add(step)
		hi := req.Budget
		if !b.Unbounded() && b.Max.LessThan(hi) {
			hi = *b.Max
		}
		if lo.GreaterThan(hi) {
			continue
		}
		out = append(out, segment{bracket: i, lo: lo, hi: hi})
	}
	return out
}

// searchSegment bisects one bracket. It returns zero when even the lowest
// price in the segment is over budget.
func (s *Solver) searchSegment(ctx context.Context, req AffordabilityRequest, seg segment) (decimal.Decimal, int, error) {
	if s.fits(req, seg.hi) {
		return seg.hi, 0, nil
	}
	if !s.fits(req, seg.lo) {
		return decimal.Zero, 0, nil
	}

	lo, hi := seg.lo, seg.hi
	step := s.Options.Step
	two := decimal.NewFromInt(2)
	iterations := 0

	// Invariant: lo fits, hi does not
	for hi.Sub(lo).GreaterThan(step) {
		if iterations >= s.Options.MaxIterations {
			return decimal.Zero, iterations, &SolverError{
				Operation: "max_property_value",
				Message:   fmt.Sprintf("bracket %d did not converge after %d iterations", seg.bracket, iterations),
			}
		}
		iterations++

		select {
		case <-ctx.Done():
			return decimal.Zero, iterations, &SolverError{Operation: "max_property_value", Message: "cancelled", Cause: ctx.Err()}
		default:
		}

		mid := lo.Add(hi).Div(two).Div(step).Floor().Mul(step)
		if s.fits(req, mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, iterations, nil
}

func (s *Solver) fits(req AffordabilityRequest, value decimal.Decimal) bool {
	return s.cost(req, value).TotalCost.LessThanOrEqual(req.Budget)
}

func (s *Solver) cost(req AffordabilityRequest, value decimal.Decimal) domain.PurchaseCosts {
	return s.Calc.CalculatePurchaseCosts(value, req.LoanAmount, req.PropertyType, req.Location)
}
