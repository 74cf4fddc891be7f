package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	tests := []struct {
		name     string
		lang     Language
		key      string
		expected string
	}{
		{"english", LanguageEnglish, "overtime", "Overtime"},
		{"german", LanguageGerman, "overtime", "Überstunden"},
		{"greek", LanguageGreek, "overtime", "Υπερωρίες"},
		{"unknown language falls back to English", Language("fr"), "overtime", "Overtime"},
		{"unknown key falls back to the key", LanguageGerman, "no.such.key", "no.such.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, T(tt.lang, tt.key))
		})
	}
}

func TestLanguageValid(t *testing.T) {
	for _, lang := range Languages() {
		assert.True(t, lang.Valid(), string(lang))
	}
	assert.False(t, Language("fr").Valid())
	assert.False(t, Language("").Valid())
}

func TestEveryLanguageCoversEnglishKeys(t *testing.T) {
	for key := range translations[LanguageEnglish] {
		for _, lang := range Languages() {
			_, ok := translations[lang][key]
			assert.True(t, ok, "missing %q in %s", key, lang)
		}
	}
}
