package handlers

import (
	"log/slog"
	"net/http"

	"github.com/irgordon/zentra/api/internal/core/services"
)

type ScoreHandler struct {
	Simulator *services.ScoreSimulator
	Logger    *slog.Logger
}

func NewScoreHandler(simulator *services.ScoreSimulator, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{Simulator: simulator, Logger: logger}
}

// Simulate handles POST /api/v1/score.
// The body is the same indented JSON the landing page shows in scoreOutput.
func (h *ScoreHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	body, err := h.Simulator.Render(h.Simulator.Simulate())
	if err != nil {
		HandleError(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
