package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/irgordon/zentra/api/internal/api/middleware"
	"github.com/irgordon/zentra/api/internal/core/services"
)

//go:embed templates/landing.html
var templateFS embed.FS

// PageHandler renders the landing page server-side.
type PageHandler struct {
	Landing *services.LandingService
	Logger  *slog.Logger
	tmpl    *template.Template
}

func NewPageHandler(landing *services.LandingService, logger *slog.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/landing.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing template: %w", err)
	}
	return &PageHandler{Landing: landing, Logger: logger, tmpl: tmpl}, nil
}

// Show handles GET /
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, false)
}

// Score handles POST /score, the landing page score button.
func (h *PageHandler) Score(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, true)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, runScore bool) {
	lang := middleware.LocaleFromContext(r.Context())

	page, err := h.Landing.Render(r.Context(), lang, runScore)
	if err != nil {
		HandleError(w, r, h.Logger, err)
		return
	}

	// Render into a buffer so a template failure never leaves a half-written page.
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		h.Logger.Error("Failed to render landing page", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
