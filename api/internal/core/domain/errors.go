package domain

import "errors"

var (
	// ErrElementNotFound is returned when a page element lookup misses.
	ErrElementNotFound = errors.New("element not found")

	// ErrUnsupportedLanguage is returned for language codes outside the dictionary.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	ErrInvalidAPIKey = errors.New("invalid api key")
)
