package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_LocaleSelection(t *testing.T) {
	s, err := NewStore("en")
	require.NoError(t, err)
	assert.Equal(t, "en", s.Locale())

	// unknown initial locale falls back to the default
	s, err = NewStore("de")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, s.Locale())
}

func TestSetLocale(t *testing.T) {
	s, err := NewStore("ru")
	require.NoError(t, err)

	require.NoError(t, s.SetLocale("uz"))
	assert.Equal(t, "uz", s.Locale())

	err = s.SetLocale("fr")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Equal(t, "uz", s.Locale())
}

func TestT_Fallbacks(t *testing.T) {
	s, err := NewStore("en")
	require.NoError(t, err)

	assert.Equal(t, "Cities", s.T("cities.title"))

	// a key missing everywhere resolves to itself
	assert.Equal(t, "does.not.exist", s.T("does.not.exist"))
}

func TestT_AllLocalesCoverSameKeys(t *testing.T) {
	s, err := NewStore("ru")
	require.NoError(t, err)

	for _, locale := range Supported() {
		for key := range s.catalogs[DefaultLocale] {
			_, ok := s.catalogs[locale][key]
			assert.True(t, ok, "locale %s is missing key %s", locale, key)
		}
	}
}

func TestTf(t *testing.T) {
	s, err := NewStore("en")
	require.NoError(t, err)

	assert.Equal(t, "3 of 7", s.Tf("common.results", 3, 7))
}
