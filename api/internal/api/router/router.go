package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/irgordon/zentra/api/internal/api/handlers"
	zmw "github.com/irgordon/zentra/api/internal/api/middleware"
)

// RouterConfig defines the dependencies required to build the routing tree.
type RouterConfig struct {
	AllowedOrigins   []string
	PageHandler      *handlers.PageHandler
	StatusHandler    *handlers.StatusHandler
	ScoreHandler     *handlers.ScoreHandler
	LanguageHandler  *handlers.LanguageHandler
	RiskHandler      *handlers.RiskHandler
	APIKeyMiddleware *zmw.APIKeyMiddleware
	RateLimiter      *zmw.RateLimiter
	Logger           *slog.Logger
}

// NewRouter constructs the Chi multiplexer, attaches global middleware, and wires all endpoints.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// =========================================================================
	// 1. Global Middleware Pipeline
	// =========================================================================

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(zmw.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", zmw.APIKeyHeader},
		MaxAge:         300,
	}))

	// =========================================================================
	// 2. Landing Page
	// =========================================================================

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Use(zmw.LocaleMiddleware)

		r.Get("/", cfg.PageHandler.Show)
		r.With(cfg.RateLimiter.Limit).Post("/score", cfg.PageHandler.Score)
	})

	// =========================================================================
	// 3. Page API v1
	// =========================================================================

	r.Route("/api/v1", func(r chi.Router) {
		// Long-lived streams must not sit behind the request timeout.
		r.Get("/status/stream", cfg.StatusHandler.Stream)
		r.Get("/ws/status", cfg.StatusHandler.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Get("/status", cfg.StatusHandler.Snapshot)
			r.With(cfg.RateLimiter.Limit).Post("/score", cfg.ScoreHandler.Simulate)
			r.Get("/i18n", cfg.LanguageHandler.List)
			r.Get("/i18n/{code}", cfg.LanguageHandler.Get)
		})
	})

	// =========================================================================
	// 4. RiskLens Partner API
	// =========================================================================

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Use(middleware.AllowContentType("application/json"))

		r.Get("/", cfg.RiskHandler.Root)
		r.Group(func(r chi.Router) {
			r.Use(cfg.APIKeyMiddleware.RequireAPIKey)
			r.Use(cfg.RateLimiter.Limit)
			r.Use(zmw.MaxBytes(1 << 20))
			r.Post("/risk", cfg.RiskHandler.Calculate)
		})
	})

	r.Get("/health", cfg.RiskHandler.Health)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	return r
}
