package domain

import (
	"fmt"
	"strings"
)

// Language is a supported page language code.
type Language string

const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"

	DefaultLanguage = LanguageTurkish
)

// Copy holds the translated hero strings for one language.
type Copy struct {
	HeroTitle string `json:"heroTitle"`
	HeroSub   string `json:"heroSub"`
	HeroBtn   string `json:"heroBtn"`
}

// Dictionary resolves a language to its copy. Implementations are read-only.
type Dictionary interface {
	Lookup(lang Language) (Copy, error)
	Languages() []Language
}

// ParseLanguage normalizes a raw code ("EN", " tr ") into a Language.
func ParseLanguage(raw string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(raw))); l {
	case LanguageTurkish, LanguageEnglish:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}
}
