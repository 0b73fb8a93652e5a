package api

import (
	"github.com/rgehrsitz/imtgo/internal/breakeven"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationRequest is the JSON body accepted by the POST endpoints. A
// missing or null value decodes to zero and yields the invalid-value result.
type CalculationRequest struct {
	Value    decimal.Decimal     `json:"value"`
	Type     domain.PropertyType `json:"type"`
	Location domain.Location     `json:"location"`
	Loan     decimal.Decimal     `json:"loan"`
}

// IMTResponse carries amounts as fixed two-decimal strings
type IMTResponse struct {
	IMT             string              `json:"imt"`
	Rate            string              `json:"rate"`
	PropertyValue   string              `json:"propertyValue,omitempty"`
	PropertyType    domain.PropertyType `json:"propertyType,omitempty"`
	Location        domain.Location     `json:"location,omitempty"`
	IslandReduction string              `json:"islandReduction,omitempty"`
	Details         string              `json:"details,omitempty"`
}

func newIMTResponse(r domain.IMTResult) IMTResponse {
	resp := IMTResponse{
		IMT:             r.IMT.StringFixed(2),
		Rate:            r.Rate.StringFixed(2),
		PropertyType:    r.PropertyType,
		Location:        r.Location,
		IslandReduction: r.IslandReduction,
		Details:         r.Details,
	}
	if r.Valid() {
		resp.PropertyValue = r.PropertyValue.StringFixed(2)
	}
	return resp
}

// PurchaseCostsResponse is the full tax summary for a purchase
type PurchaseCostsResponse struct {
	PropertyValue        string      `json:"propertyValue"`
	LoanAmount           string      `json:"loanAmount"`
	IMT                  IMTResponse `json:"imt"`
	AcquisitionStampDuty string      `json:"acquisitionStampDuty"`
	LoanStampDuty        string      `json:"loanStampDuty"`
	TotalTaxes           string      `json:"totalTaxes"`
	TotalCost            string      `json:"totalCost"`
}

func newPurchaseCostsResponse(c domain.PurchaseCosts) PurchaseCostsResponse {
	return PurchaseCostsResponse{
		PropertyValue:        c.PropertyValue.StringFixed(2),
		LoanAmount:           c.LoanAmount.StringFixed(2),
		IMT:                  newIMTResponse(c.IMT),
		AcquisitionStampDuty: c.AcquisitionStampDuty.StringFixed(2),
		LoanStampDuty:        c.LoanStampDuty.StringFixed(2),
		TotalTaxes:           c.TotalTaxes.StringFixed(2),
		TotalCost:            c.TotalCost.StringFixed(2),
	}
}

// AffordabilityResponse is the most expensive purchase a budget covers.
// Costs is omitted when no purchase fits.
type AffordabilityResponse struct {
	Budget           string                 `json:"budget"`
	LoanAmount       string                 `json:"loanAmount"`
	Feasible         bool                   `json:"feasible"`
	MaxPropertyValue string                 `json:"maxPropertyValue"`
	Headroom         string                 `json:"headroom"`
	Costs            *PurchaseCostsResponse `json:"costs,omitempty"`
}

func newAffordabilityResponse(r *breakeven.AffordabilityResult) AffordabilityResponse {
	resp := AffordabilityResponse{
		Budget:           r.Request.Budget.StringFixed(2),
		LoanAmount:       r.Request.LoanAmount.StringFixed(2),
		Feasible:         r.Feasible,
		MaxPropertyValue: r.MaxPropertyValue.StringFixed(2),
		Headroom:         r.Headroom.StringFixed(2),
	}
	if r.Feasible {
		costs := newPurchaseCostsResponse(r.Costs)
		resp.Costs = &costs
	}
	return resp
}

// StampDutyResponse is the stamp duty due on a loan
type StampDutyResponse struct {
	LoanAmount string `json:"loanAmount"`
	StampDuty  string `json:"stampDuty"`
}

// ZipResponse reports whether a postal code is well formed
type ZipResponse struct {
	Zip   string `json:"zip"`
	Valid bool   `json:"valid"`
}

// AreaResponse holds an area in both units
type AreaResponse struct {
	SquareMeters string `json:"squareMeters"`
	SquareFeet   string `json:"squareFeet"`
}

// PriceResponse holds an amount and its pt-PT rendering
type PriceResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// HealthResponse reports liveness and the rules in use
type HealthResponse struct {
	Status    string `json:"status"`
	RulesYear int    `json:"rulesYear"`
}
