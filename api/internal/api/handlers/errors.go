package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// Use a single instance of Validate, it caches struct info
var validate = validator.New()

type errorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// HandleError maps service and validation errors onto JSON HTTP responses.
// Unexpected errors are logged through logger.
func HandleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field())+": "+fe.Tag())
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: "Validation failed", Fields: fields})
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Unsupported language"})
	case errors.Is(err, domain.ErrInvalidAPIKey):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid API Key"})
	default:
		if logger == nil {
			logger = slog.Default()
		}
		logger.ErrorContext(r.Context(), "Unhandled request error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
