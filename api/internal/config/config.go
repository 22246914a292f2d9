package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// Health routes shown on the landing page. Fixed at build time.
const (
	RiskHealthURL   = "https://zentra-risklens-api-2.onrender.com/health"
	StressHealthURL = "https://zentra-credit-stress-api.onrender.com/health"
)

// Demo keys accepted by the RiskLens endpoint outside production.
var defaultRiskAPIKeys = []string{"zentra-demo-key", "zentra-partner-key"}

// Config holds the runtime configuration of the landing service.
type Config struct {
	Environment    string // "development" or "production"
	Port           string
	AllowedOrigins []string
	LogLevel       string

	// HealthTimeout bounds a single health GET.
	HealthTimeout time.Duration
	// HealthPollInterval re-checks endpoints periodically; zero checks once at startup.
	HealthPollInterval time.Duration

	RiskAPIKeys []string
}

// Load reads .env (when present) and the environment, applying defaults.
func Load() *Config {
	// A missing .env is normal in containers.
	_ = godotenv.Load()

	env := getEnv("ZENTRA_ENV", "production")

	apiKeys := splitList(getEnv("RISK_API_KEYS", ""))
	if len(apiKeys) == 0 {
		if env == "production" {
			log.Fatal("[FATAL] RISK_API_KEYS environment variable is required in production.")
		}
		apiKeys = append([]string(nil), defaultRiskAPIKeys...)
	}

	origins := splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     origins,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		HealthTimeout:      getDuration("HEALTH_TIMEOUT", 10*time.Second),
		HealthPollInterval: getDuration("HEALTH_POLL_INTERVAL", 0),
		RiskAPIKeys:        apiKeys,
	}
}

// Endpoints returns the health routes displayed on the landing page.
func Endpoints() []domain.Endpoint {
	return []domain.Endpoint{
		{Name: "risk", URL: RiskHealthURL, ElementID: domain.ElemRiskStatus},
		{Name: "stress", URL: StressHealthURL, ElementID: domain.ElemStressStatus},
	}
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getDuration parses values such as "30s"; malformed or negative values use the fallback.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("[WARN] ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
