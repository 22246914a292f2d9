package middleware_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/irgordon/zentra/api/internal/api/middleware"
	"github.com/irgordon/zentra/api/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// ==============================================================================
// Locale
// ==============================================================================

func localeOf(t *testing.T, req *http.Request) (domain.Language, *httptest.ResponseRecorder) {
	t.Helper()
	var got domain.Language
	h := middleware.LocaleMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.LocaleFromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestLocale_DefaultTurkish(t *testing.T) {
	lang, rec := localeOf(t, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, domain.LanguageTurkish, lang)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLocale_QuerySetsCookie(t *testing.T) {
	lang, rec := localeOf(t, httptest.NewRequest(http.MethodGet, "/?lang=EN", nil))

	assert.Equal(t, domain.LanguageEnglish, lang)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.LangCookie, cookies[0].Name)
	assert.Equal(t, "en", cookies[0].Value)
}

func TestLocale_CookieAndInvalidQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LangCookie, Value: "en"})

	lang, rec := localeOf(t, req)

	assert.Equal(t, domain.LanguageEnglish, lang)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLocaleFromContext_Empty(t *testing.T) {
	assert.Equal(t, domain.DefaultLanguage, middleware.LocaleFromContext(context.Background()))
}

// ==============================================================================
// API key
// ==============================================================================

func TestRequireAPIKey(t *testing.T) {
	h := middleware.NewAPIKeyMiddleware([]string{"zentra-demo-key"}, discardLogger()).RequireAPIKey(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/v1/risk", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid API Key"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/risk", nil)
	req.Header.Set(middleware.APIKeyHeader, "zentra-demo-key")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ==============================================================================
// Rate limiting
// ==============================================================================

func TestRateLimiter_PerIP(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := middleware.NewRateLimiter(ctx, rate.Limit(0.001), 2).Limit(okHandler)

	serve := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/score", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:3333"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.2:1111"))
}

// ==============================================================================
// Access log
// ==============================================================================

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.StructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Contains(t, buf.String(), "path=/ping")
	assert.Contains(t, buf.String(), "status=418")
}
