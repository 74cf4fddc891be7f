// Package i18n holds the user-facing string tables. The set of languages is
// fixed; lookups fall back to English and then to the key itself.
package i18n

// Language is an enumerated UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
	LanguageGreek   Language = "el"
)

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageGerman, LanguageGreek:
		return true
	}
	return false
}

// Languages lists the supported languages in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageGerman, LanguageGreek}
}

// DefaultLanguage is used when no language has been configured.
const DefaultLanguage = LanguageGerman

// T returns the translation of key in the given language, falling back to
// English, then to the key itself.
func T(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if value, ok := translations[LanguageEnglish][key]; ok {
		return value
	}
	return key
}
