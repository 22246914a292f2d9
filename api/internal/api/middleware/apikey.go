package middleware

import (
	"log/slog"
	"net/http"

	"github.com/irgordon/zentra/api/internal/core/utils"
)

// APIKeyHeader carries the RiskLens partner key.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards partner endpoints with a static key list.
type APIKeyMiddleware struct {
	keys   []string
	logger *slog.Logger
}

func NewAPIKeyMiddleware(keys []string, logger *slog.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys:   append([]string(nil), keys...),
		logger: logger,
	}
}

func (m *APIKeyMiddleware) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.MatchAPIKey(r.Header.Get(APIKeyHeader), m.keys) {
			m.logger.Warn("Rejected request with invalid API key",
				slog.String("path", r.URL.Path),
				slog.String("remote_ip", r.RemoteAddr),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Invalid API Key"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
