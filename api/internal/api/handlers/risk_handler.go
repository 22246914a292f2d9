package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/core/services"
)

// RiskHandler serves the RiskLens partner API.
type RiskHandler struct {
	Service *services.RiskService
	Logger  *slog.Logger
}

func NewRiskHandler(service *services.RiskService, logger *slog.Logger) *RiskHandler {
	return &RiskHandler{Service: service, Logger: logger}
}

// riskPayload is the wire form of domain.RiskRequest. Pointers tell a missing
// field apart from an explicit zero; every field is required.
type riskPayload struct {
	Amount           *float64 `json:"amount" validate:"required,gt=0,lte=10000000"`
	Sector           string   `json:"sector" validate:"required,max=100"`
	SectorRiskLevel  *int     `json:"sector_risk_level" validate:"required,gte=1,lte=5"`
	PaymentDelayDays *int     `json:"payment_delay_days" validate:"required,gte=0,lte=365"`
	CustomerScore    *int     `json:"customer_score" validate:"required,gte=0,lte=100"`
	ExposureRatio    *float64 `json:"exposure_ratio" validate:"required,gte=0,lte=1"`
}

// toRequest must only be called after validation.
func (p riskPayload) toRequest() domain.RiskRequest {
	return domain.RiskRequest{
		Amount:           *p.Amount,
		Sector:           p.Sector,
		SectorRiskLevel:  *p.SectorRiskLevel,
		PaymentDelayDays: *p.PaymentDelayDays,
		CustomerScore:    *p.CustomerScore,
		ExposureRatio:    *p.ExposureRatio,
	}
}

// Calculate handles POST /v1/risk
func (h *RiskHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var payload riskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Message: "Request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON payload"})
		return
	}

	if err := validate.Struct(payload); err != nil {
		HandleError(w, r, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Service.Calculate(r.Context(), payload.toRequest()))
}

// Root handles GET /v1
func (h *RiskHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "Zentra RiskLens API is live",
		"version": domain.RiskModelVersion,
	})
}

// Health handles GET /health
func (h *RiskHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "zentra-risklens",
		"timestamp": time.Now().UTC(),
	})
}
