package i18n

import (
	"fmt"
	"sort"

	"github.com/irgordon/zentra/api/internal/core/domain"
)

// Hero copy for the landing page. Edited here only; never mutated at runtime.
var heroCopy = map[domain.Language]domain.Copy{
	domain.LanguageTurkish: {
		HeroTitle: "Davranışsal Finansal Altyapı",
		HeroSub:   "Bankalar ve regülasyon yoğun fintech’ler için lisanslanabilir risk altyapısı.",
		HeroBtn:   "Canlı Sistem",
	},
	domain.LanguageEnglish: {
		HeroTitle: "Behavioral Financial Infrastructure",
		HeroSub:   "Licensable risk infrastructure for banks and regulated fintechs.",
		HeroBtn:   "Live System",
	},
}

// Dictionary is an immutable language -> copy table.
type Dictionary struct {
	entries map[domain.Language]domain.Copy
}

// Default returns the built-in landing page dictionary.
func Default() *Dictionary {
	return New(heroCopy)
}

// New copies entries so later changes to the caller's map are not observed.
func New(entries map[domain.Language]domain.Copy) *Dictionary {
	d := &Dictionary{entries: make(map[domain.Language]domain.Copy, len(entries))}
	for lang, c := range entries {
		d.entries[lang] = c
	}
	return d
}

// Lookup returns the copy for lang, or ErrUnsupportedLanguage.
func (d *Dictionary) Lookup(lang domain.Language) (domain.Copy, error) {
	c, ok := d.entries[lang]
	if !ok {
		return domain.Copy{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}
	return c, nil
}

// Languages lists the supported codes in a stable order.
func (d *Dictionary) Languages() []domain.Language {
	out := make([]domain.Language, 0, len(d.entries))
	for lang := range d.entries {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
