package domain

import "golang.org/x/text/language"

// Language is one of the supported catalog languages.
type Language string

const (
	LangEN Language = "en"
	LangDE Language = "de"
	LangFR Language = "fr"
	LangNL Language = "nl"
)

// SupportedLanguages is the closed set of language codes the pipeline
// accepts from supplier documents, in fallback order.
var SupportedLanguages = []Language{LangEN, LangDE, LangFR, LangNL}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
	language.Dutch,
})

// LocalizedText maps supported language codes to text. Absent languages
// stay unset so downstream sinks can apply their own fallback.
type LocalizedText map[Language]string

// ParseLanguage normalizes a supplier language code ("de", "de-DE", "DE")
// to a supported Language. Unsupported codes are rejected.
func ParseLanguage(code string) (Language, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return SupportedLanguages[idx], true
}

// Get returns the text for lang without fallback.
func (t LocalizedText) Get(lang Language) (string, bool) {
	s, ok := t[lang]
	return s, ok
}

// Resolve returns the text for lang, falling back through
// SupportedLanguages order when lang is unset.
func (t LocalizedText) Resolve(lang Language) (string, bool) {
	if s, ok := t[lang]; ok {
		return s, true
	}
	for _, l := range SupportedLanguages {
		if s, ok := t[l]; ok {
			return s, true
		}
	}
	return "", false
}

// IsEmpty reports whether no language carries text.
func (t LocalizedText) IsEmpty() bool {
	return len(t) == 0
}
