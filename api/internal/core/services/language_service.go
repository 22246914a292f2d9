package services

import (
	"fmt"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// LanguageSwitcher swaps the hero copy between dictionary languages and keeps
// exactly one toggle button marked active.
type LanguageSwitcher struct {
	dict    domain.Dictionary
	title   *domain.Element
	sub     *domain.Element
	button  *domain.Element
	toggles map[domain.Language]*domain.Element
	current domain.Language
}

// NewLanguageSwitcher binds the switcher to its elements and applies the default language.
func NewLanguageSwitcher(dict domain.Dictionary, doc *domain.Document) (*LanguageSwitcher, error) {
	els, err := doc.LookupAll(
		domain.ElemHeroTitle,
		domain.ElemHeroSub,
		domain.ElemHeroBtn,
		domain.ElemTrBtn,
		domain.ElemEnBtn,
	)
	if err != nil {
		return nil, fmt.Errorf("language switcher: %w", err)
	}

	s := &LanguageSwitcher{
		dict:   dict,
		title:  els[0],
		sub:    els[1],
		button: els[2],
		toggles: map[domain.Language]*domain.Element{
			domain.LanguageTurkish: els[3],
			domain.LanguageEnglish: els[4],
		},
	}
	if err := s.Apply(domain.DefaultLanguage); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply shows lang's copy. Unknown codes return ErrUnsupportedLanguage and
// leave every element untouched.
func (s *LanguageSwitcher) Apply(lang domain.Language) error {
	c, err := s.dict.Lookup(lang)
	if err != nil {
		return err
	}

	s.title.SetText(c.HeroTitle)
	s.sub.SetText(c.HeroSub)
	s.button.SetText(c.HeroBtn)
	for code, toggle := range s.toggles {
		toggle.ToggleClass(domain.ClassActive, code == lang)
	}
	s.current = lang
	return nil
}

// Current returns the language last applied.
func (s *LanguageSwitcher) Current() domain.Language {
	return s.current
}
