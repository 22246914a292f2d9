package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

type LanguageHandler struct {
	Dictionary domain.Dictionary
	Logger     *slog.Logger
}

func NewLanguageHandler(dict domain.Dictionary, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{Dictionary: dict, Logger: logger}
}

// List handles GET /api/v1/i18n
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": h.Dictionary.Languages(),
		"default":   domain.DefaultLanguage,
	})
}

// Get handles GET /api/v1/i18n/{code}
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, err := domain.ParseLanguage(chi.URLParam(r, "code"))
	if err != nil {
		HandleError(w, r, h.Logger, err)
		return
	}

	c, err := h.Dictionary.Lookup(lang)
	if err != nil {
		HandleError(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, c)
}
