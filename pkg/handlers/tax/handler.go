package tax

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fin-tools/tax-atlas/pkg/adapters"
	"github.com/fin-tools/tax-atlas/pkg/models/api"
	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	taxservice "github.com/fin-tools/tax-atlas/pkg/services/tax"
	"github.com/rs/zerolog"
)

type Handler struct {
	planner taxservice.Planner
}

func NewHandler(planner taxservice.Planner) *Handler {
	return &Handler{planner: planner}
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, logger, http.StatusBadRequest, "bad_request", "malformed request body")
		return
	}

	regime := domain.Regime(req.Regime)
	if req.Regime == "" {
		regime = domain.RegimeOld
	}

	result, err := h.planner.CalculateTax(req.Income, req.Deductions, regime)
	if err != nil {
		writeFailure(w, logger, err)
		return
	}

	writeJSON(w, logger, adapters.MapTaxResultDomainToApi(result))
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, logger, http.StatusBadRequest, "bad_request", "malformed request body")
		return
	}

	comparison, err := h.planner.CompareRegimes(req.Income, req.Deductions)
	if err != nil {
		writeFailure(w, logger, err)
		return
	}

	writeJSON(w, logger, adapters.MapRegimeComparisonDomainToApi(comparison))
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, logger, http.StatusBadRequest, "bad_request", "malformed request body")
		return
	}

	recommendations, err := h.planner.GetRecommendations(req.Income, req.Deductions)
	if err != nil {
		writeFailure(w, logger, err)
		return
	}

	writeJSON(w, logger, adapters.MapRecommendationsDomainToApi(recommendations))
}

// writeFailure maps the engine's failure taxonomy onto HTTP statuses.
func writeFailure(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, taxservice.ErrInvalidRegime):
		writeError(w, logger, http.StatusBadRequest, "invalid_regime", err.Error())
	case errors.Is(err, taxservice.ErrNegativeAmount):
		writeError(w, logger, http.StatusBadRequest, "negative_amount", err.Error())
	default:
		logger.Error().Err(err).Msg("tax computation failed")
		writeError(w, logger, http.StatusInternalServerError, "internal", "internal error")
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Kind: kind, Message: message}); err != nil {
		logger.Error().Err(err).Msg("failed to encode error response")
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
