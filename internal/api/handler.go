package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rgehrsitz/imtgo/internal/breakeven"
	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/district"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/rgehrsitz/imtgo/pkg/ptutil"
	"github.com/shopspring/decimal"
)

// Handler exposes the calculator over HTTP. It holds no state of its own.
type Handler struct {
	calc    *calculation.Calculator
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a new Handler
func New(calc *calculation.Calculator, logger *slog.Logger, metrics *Metrics) *Handler {
	return &Handler{calc: calc, logger: logger, metrics: metrics}
}

// Register registers the /api/v1 routes with the chi router
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/imt", h.handleIMT)
		r.Post("/imt", h.handleIMTBody)
		r.Get("/stamp-duty", h.handleStampDuty)
		r.Get("/purchase-costs", h.handlePurchaseCosts)
		r.Post("/purchase-costs", h.handlePurchaseCostsBody)
		r.Get("/affordability", h.handleAffordability)
		r.Get("/districts", h.handleDistricts)
		r.Get("/districts/{name}", h.handleDistrict)
		r.Get("/districts/{name}/cities", h.handleCities)
		r.Get("/zip/{code}", h.handleZip)
		r.Get("/area", h.handleArea)
		r.Get("/price", h.handlePrice)
	})
	r.Get("/health", h.handleHealth)
}

func (h *Handler) handleIMT(w http.ResponseWriter, r *http.Request) {
	value, _, err := decimalQuery(r, "value")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	q := r.URL.Query()
	writeJSON(w, Success(http.StatusOK, newIMTResponse(h.imt(value, domain.PropertyType(q.Get("type")), domain.Location(q.Get("location"))))))
}

func (h *Handler) handleIMTBody(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, Success(http.StatusOK, newIMTResponse(h.imt(req.Value, req.Type, req.Location))))
}

func (h *Handler) imt(value decimal.Decimal, pt domain.PropertyType, loc domain.Location) domain.IMTResult {
	result := h.calc.CalculateIMT(value, pt, loc)
	h.metrics.ObserveCalculation(string(result.PropertyType), string(result.Location), result.Valid())
	return result
}

func (h *Handler) handleStampDuty(w http.ResponseWriter, r *http.Request) {
	loan, _, err := decimalQuery(r, "loan")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	writeJSON(w, Success(http.StatusOK, StampDutyResponse{
		LoanAmount: loan.StringFixed(2),
		StampDuty:  h.calc.CalculateStampDuty(loan).StringFixed(2),
	}))
}

func (h *Handler) handlePurchaseCosts(w http.ResponseWriter, r *http.Request) {
	value, _, err := decimalQuery(r, "value")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	loan, _, err := decimalQuery(r, "loan")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	q := r.URL.Query()
	writeJSON(w, Success(http.StatusOK, h.purchaseCosts(value, loan, domain.PropertyType(q.Get("type")), domain.Location(q.Get("location")))))
}

func (h *Handler) handlePurchaseCostsBody(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, Success(http.StatusOK, h.purchaseCosts(req.Value, req.Loan, req.Type, req.Location)))
}

func (h *Handler) purchaseCosts(value, loan decimal.Decimal, pt domain.PropertyType, loc domain.Location) PurchaseCostsResponse {
	costs := h.calc.CalculatePurchaseCosts(value, loan, pt, loc)
	h.metrics.ObserveCalculation(string(costs.IMT.PropertyType), string(costs.IMT.Location), costs.IMT.Valid())
	return newPurchaseCostsResponse(costs)
}

func (h *Handler) handleAffordability(w http.ResponseWriter, r *http.Request) {
	budget, _, err := decimalQuery(r, "budget")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	loan, _, err := decimalQuery(r, "loan")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	q := r.URL.Query()
	result, err := breakeven.NewDefaultSolver(h.calc).MaxPropertyValue(r.Context(), breakeven.AffordabilityRequest{
		Budget:       budget,
		LoanAmount:   loan,
		PropertyType: domain.PropertyType(q.Get("type")),
		Location:     domain.Location(q.Get("location")),
	})
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	writeJSON(w, Success(http.StatusOK, newAffordabilityResponse(result)))
}

func (h *Handler) handleDistricts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("detail") == "true" {
		writeJSON(w, Success(http.StatusOK, district.All()))
		return
	}
	writeJSON(w, Success(http.StatusOK, district.GetAllDistricts()))
}

func (h *Handler) handleDistrict(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, ok := district.GetDistrictInfo(name)
	if !ok {
		writeJSON(w, Error(http.StatusNotFound, fmt.Sprintf("unknown district %q", name)))
		return
	}
	writeJSON(w, Success(http.StatusOK, d))
}

func (h *Handler) handleCities(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := district.GetDistrictInfo(name); !ok {
		writeJSON(w, Error(http.StatusNotFound, fmt.Sprintf("unknown district %q", name)))
		return
	}
	writeJSON(w, Success(http.StatusOK, district.GetCitiesByDistrict(name)))
}

func (h *Handler) handleZip(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	writeJSON(w, Success(http.StatusOK, ZipResponse{Zip: code, Valid: ptutil.ValidatePortugueseZipCode(code)}))
}

func (h *Handler) handleArea(w http.ResponseWriter, r *http.Request) {
	m2, hasM2, err := decimalQuery(r, "m2")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	ft2, hasFt2, err := decimalQuery(r, "ft2")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	switch {
	case hasM2:
		writeJSON(w, Success(http.StatusOK, AreaResponse{
			SquareMeters: m2.String(),
			SquareFeet:   ptutil.SquareMetersToFeet(m2).StringFixed(2),
		}))
	case hasFt2:
		writeJSON(w, Success(http.StatusOK, AreaResponse{
			SquareMeters: ptutil.SquareFeetToMeters(ft2).StringFixed(2),
			SquareFeet:   ft2.String(),
		}))
	default:
		h.badRequest(w, r, fmt.Errorf("one of m2 or ft2 is required"))
	}
}

func (h *Handler) handlePrice(w http.ResponseWriter, r *http.Request) {
	amount, _, err := decimalQuery(r, "amount")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	writeJSON(w, Success(http.StatusOK, PriceResponse{
		Amount:    amount.StringFixed(2),
		Formatted: ptutil.FormatPortuguesePrice(amount),
	}))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, Success(http.StatusOK, HealthResponse{Status: "ok", RulesYear: h.calc.Rules.Metadata.DataYear}))
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (CalculationRequest, bool) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, r, fmt.Errorf("invalid JSON body: %w", err))
		return req, false
	}
	if err := domain.CheckAmount(req.Value); err != nil {
		h.badRequest(w, r, fmt.Errorf("invalid value: %w", err))
		return req, false
	}
	if err := domain.CheckAmount(req.Loan); err != nil {
		h.badRequest(w, r, fmt.Errorf("invalid loan: %w", err))
		return req, false
	}
	return req, true
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WarnContext(r.Context(), "bad request",
		"request_id", GetRequestID(r.Context()),
		"error", err,
	)
	writeJSON(w, Error(http.StatusBadRequest, err.Error()))
}

// decimalQuery parses an optional decimal query parameter. A missing or
// empty parameter is zero and not present. Values outside the accepted
// amount range are rejected before any calculation sees them.
func decimalQuery(r *http.Request, name string) (decimal.Decimal, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid %s %q: must be a number", name, raw)
	}
	if err := domain.CheckAmount(d); err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, true, nil
}
