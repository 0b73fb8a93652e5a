package breakeven

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func solve(t *testing.T, req AffordabilityRequest) *AffordabilityResult {
	t.Helper()
	result, err := NewDefaultSolver(calculation.NewCalculator()).MaxPropertyValue(context.Background(), req)
	require.NoError(t, err)
	return result
}

func TestNewDefaultSolver(t *testing.T) {
	calc := calculation.NewCalculator()
	solver := NewDefaultSolver(calc)

	assert.Same(t, calc, solver.Calc)
	assert.Equal(t, 64, solver.Options.MaxIterations)
	assert.True(t, dec("0.01").Equal(solver.Options.Step))
}

func TestMaxPropertyValue(t *testing.T) {
	tests := []struct {
		name      string
		req       AffordabilityRequest
		wantValue string
		wantTotal string
	}{
		{
			name:      "8% bracket lands exactly on budget",
			req:       AffordabilityRequest{Budget: dec("200000"), PropertyType: domain.PropertyResidential},
			wantValue: "192854.25",
			wantTotal: "200000",
		},
		{
			name:      "whole-value bracket beats the bracket below",
			req:       AffordabilityRequest{Budget: dec("678000"), PropertyType: domain.PropertyResidential},
			wantValue: "634831.46",
			wantTotal: "678000",
		},
		{
			name:      "loan stamp duty comes out of the budget",
			req:       AffordabilityRequest{Budget: dec("91320"), LoanAmount: dec("100000")},
			wantValue: "90000",
			wantTotal: "91320",
		},
		{
			name:      "exempt bracket upper bound",
			req:       AffordabilityRequest{Budget: dec("97840.51")},
			wantValue: "97064",
			wantTotal: "97840.51",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := solve(t, tt.req)

			require.True(t, result.Feasible)
			assert.True(t, dec(tt.wantValue).Equal(result.MaxPropertyValue), "got %s", result.MaxPropertyValue)
			assert.True(t, dec(tt.wantTotal).Equal(result.Costs.TotalCost), "got %s", result.Costs.TotalCost)
			assert.True(t, result.Headroom.IsZero())
		})
	}
}

func TestMaxPropertyValue_NextCentIsOverBudget(t *testing.T) {
	calc := calculation.NewCalculator()
	budgets := []string{"150000", "250000", "500000", "680000", "1200000"}
	for _, b := range budgets {
		req := AffordabilityRequest{Budget: dec(b), PropertyType: domain.PropertyResidential, Location: domain.LocationMadeira}
		result := solve(t, req)
		require.True(t, result.Feasible, b)

		assert.True(t, result.Costs.TotalCost.LessThanOrEqual(req.Budget), b)
		next := calc.CalculatePurchaseCosts(result.MaxPropertyValue.Add(dec("0.01")), req.LoanAmount, req.PropertyType, req.Location)
		assert.True(t, next.TotalCost.GreaterThan(req.Budget), "budget %s: %s still fits", b, next.PropertyValue)
	}
}

func TestMaxPropertyValue_FlatSchedule(t *testing.T) {
	// commercial: 6.5% IMT + 0.8% deed duty, island reduction on IMT
	result := solve(t, AffordabilityRequest{Budget: dec("1073"), PropertyType: domain.PropertyCommercial})
	assert.True(t, dec("1000").Equal(result.MaxPropertyValue), "got %s", result.MaxPropertyValue)
	assert.Equal(t, 0, result.Bracket)

	island := solve(t, AffordabilityRequest{Budget: dec("1060"), PropertyType: domain.PropertyLand, Location: domain.LocationAzores})
	assert.True(t, dec("1000").Equal(island.MaxPropertyValue), "got %s", island.MaxPropertyValue)
}

func TestMaxPropertyValue_Defaults(t *testing.T) {
	result := solve(t, AffordabilityRequest{Budget: dec("50400")})

	assert.Equal(t, domain.PropertyResidential, result.Request.PropertyType)
	assert.Equal(t, domain.LocationMainland, result.Request.Location)
	assert.True(t, dec("50000").Equal(result.MaxPropertyValue), "got %s", result.MaxPropertyValue)
}

func TestMaxPropertyValue_Infeasible(t *testing.T) {
	// 600 of loan stamp duty exceeds the whole budget
	result := solve(t, AffordabilityRequest{Budget: dec("500"), LoanAmount: dec("100000")})

	assert.False(t, result.Feasible)
	assert.True(t, result.MaxPropertyValue.IsZero())
	assert.True(t, dec("500").Equal(result.Headroom))
	assert.Equal(t, -1, result.Bracket)
}

func TestMaxPropertyValue_InvalidRequest(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewCalculator())
	tests := []struct {
		name string
		req  AffordabilityRequest
		msg  string
	}{
		{"zero budget", AffordabilityRequest{Budget: decimal.Zero}, "budget must be positive"},
		{"negative loan", AffordabilityRequest{Budget: dec("1000"), LoanAmount: dec("-1")}, "loan cannot be negative"},
		{"unknown type", AffordabilityRequest{Budget: dec("1000"), PropertyType: "castle"}, "unknown property type castle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.MaxPropertyValue(context.Background(), tt.req)
			var solverErr *SolverError
			require.True(t, errors.As(err, &solverErr))
			assert.Equal(t, "validate_request", solverErr.Operation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMaxPropertyValue_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultSolver(calculation.NewCalculator()).MaxPropertyValue(ctx, AffordabilityRequest{Budget: dec("200000")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaxPropertyValue_IterationLimit(t *testing.T) {
	solver := NewSolver(calculation.NewCalculator(), SolverOptions{MaxIterations: 2, Step: dec("0.01")})

	_, err := solver.MaxPropertyValue(context.Background(), AffordabilityRequest{Budget: dec("200000")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not converge after 2 iterations")
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	WriteResult(&buf, solve(t, AffordabilityRequest{Budget: dec("200000")}))

	out := buf.String()
	assert.Contains(t, out, "AFFORDABILITY")
	assert.Contains(t, out, "Max property value:    €192854.25")
	assert.Contains(t, out, "Unspent:               €0.00")
	assert.Contains(t, out, "PURCHASE COSTS")

	buf.Reset()
	WriteResult(&buf, solve(t, AffordabilityRequest{Budget: dec("10"), LoanAmount: dec("100000")}))
	assert.Contains(t, buf.String(), "does not cover the taxes")
}

func TestSolverError(t *testing.T) {
	cause := errors.New("boom")
	err := &SolverError{Operation: "op", Message: "failed", Cause: cause}

	assert.Equal(t, "op: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "op: failed", (&SolverError{Operation: "op", Message: "failed"}).Error())
}
