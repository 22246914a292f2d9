package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/core/services"
	"github.com/irgordon/zentra/api/internal/i18n"
)

func newSwitcher(t *testing.T) (*services.LanguageSwitcher, *domain.Document) {
	t.Helper()
	doc := domain.NewLandingDocument()
	s, err := services.NewLanguageSwitcher(i18n.Default(), doc)
	require.NoError(t, err)
	return s, doc
}

func text(t *testing.T, doc *domain.Document, id string) string {
	t.Helper()
	el, err := doc.Lookup(id)
	require.NoError(t, err)
	return el.Text()
}

func active(t *testing.T, doc *domain.Document, id string) bool {
	t.Helper()
	el, err := doc.Lookup(id)
	require.NoError(t, err)
	return el.HasClass(domain.ClassActive)
}

func TestLanguageSwitcher_DefaultsToTurkish(t *testing.T) {
	s, doc := newSwitcher(t)

	assert.Equal(t, domain.LanguageTurkish, s.Current())
	assert.Equal(t, "Davranışsal Finansal Altyapı", text(t, doc, domain.ElemHeroTitle))
	assert.True(t, active(t, doc, domain.ElemTrBtn))
	assert.False(t, active(t, doc, domain.ElemEnBtn))
}

func TestLanguageSwitcher_English(t *testing.T) {
	s, doc := newSwitcher(t)

	require.NoError(t, s.Apply(domain.LanguageEnglish))

	assert.Equal(t, "Behavioral Financial Infrastructure", text(t, doc, domain.ElemHeroTitle))
	assert.Equal(t, "Licensable risk infrastructure for banks and regulated fintechs.", text(t, doc, domain.ElemHeroSub))
	assert.Equal(t, "Live System", text(t, doc, domain.ElemHeroBtn))
	assert.True(t, active(t, doc, domain.ElemEnBtn))
	assert.False(t, active(t, doc, domain.ElemTrBtn))
}

func TestLanguageSwitcher_RoundTripAndIdempotent(t *testing.T) {
	s, doc := newSwitcher(t)
	tr, err := i18n.Default().Lookup(domain.LanguageTurkish)
	require.NoError(t, err)

	require.NoError(t, s.Apply(domain.LanguageEnglish))
	require.NoError(t, s.Apply(domain.LanguageTurkish))
	require.NoError(t, s.Apply(domain.LanguageTurkish))

	assert.Equal(t, tr.HeroTitle, text(t, doc, domain.ElemHeroTitle))
	assert.Equal(t, tr.HeroSub, text(t, doc, domain.ElemHeroSub))
	assert.Equal(t, tr.HeroBtn, text(t, doc, domain.ElemHeroBtn))
	assert.True(t, active(t, doc, domain.ElemTrBtn))
	assert.False(t, active(t, doc, domain.ElemEnBtn))

	require.NoError(t, s.Apply(domain.LanguageEnglish))
	require.NoError(t, s.Apply(domain.LanguageEnglish))
	assert.True(t, active(t, doc, domain.ElemEnBtn))
	assert.False(t, active(t, doc, domain.ElemTrBtn))
}

func TestLanguageSwitcher_UnsupportedLeavesState(t *testing.T) {
	s, doc := newSwitcher(t)
	require.NoError(t, s.Apply(domain.LanguageEnglish))

	err := s.Apply("de")
	require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)

	assert.Equal(t, domain.LanguageEnglish, s.Current())
	assert.Equal(t, "Behavioral Financial Infrastructure", text(t, doc, domain.ElemHeroTitle))
	assert.True(t, active(t, doc, domain.ElemEnBtn))
}

func TestLanguageSwitcher_MissingElement(t *testing.T) {
	doc := domain.NewDocument(domain.ElemHeroTitle, domain.ElemHeroSub)

	_, err := services.NewLanguageSwitcher(i18n.Default(), doc)
	assert.ErrorIs(t, err, domain.ErrElementNotFound)
}
