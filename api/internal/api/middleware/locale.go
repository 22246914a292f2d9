package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

type ctxKey int

const localeKey ctxKey = 1

// LangCookie remembers the visitor's language between page loads.
const LangCookie = "zentra_lang"

// LocaleMiddleware resolves the page language from ?lang, then the language
// cookie, then the default. Unknown codes are ignored. An explicit valid
// ?lang is remembered in the cookie.
func LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := domain.DefaultLanguage

		if c, err := r.Cookie(LangCookie); err == nil {
			if l, err := domain.ParseLanguage(c.Value); err == nil {
				lang = l
			}
		}

		if q := r.URL.Query().Get("lang"); q != "" {
			if l, err := domain.ParseLanguage(q); err == nil {
				lang = l
				http.SetCookie(w, &http.Cookie{
					Name:     LangCookie,
					Value:    string(l),
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		ctx := context.WithValue(r.Context(), localeKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext retrieves the language stored by LocaleMiddleware.
func LocaleFromContext(ctx context.Context) domain.Language {
	if v, ok := ctx.Value(localeKey).(domain.Language); ok {
		return v
	}
	return domain.DefaultLanguage
}
