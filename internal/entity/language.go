package entity

import "strings"

type Language string

const (
	LanguageES Language = "es"
	LanguageCA Language = "ca"
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageDE Language = "de"
	LanguageIT Language = "it"
)

// SupportedLanguages is ordered the way the language switcher lists them.
var SupportedLanguages = []Language{
	LanguageES,
	LanguageCA,
	LanguageEN,
	LanguageFR,
	LanguageDE,
	LanguageIT,
}

func (l Language) Valid() bool {
	for _, s := range SupportedLanguages {
		if s == l {
			return true
		}
	}
	return false
}

// ParseLanguage never fails: unknown or empty codes resolve to fallback.
func ParseLanguage(code string, fallback Language) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if len(lang) > 2 {
		lang = lang[:2]
	}
	if lang.Valid() {
		return lang
	}
	return fallback
}

type LocalizedText map[Language]string

func NewLocalizedText(es, ca, en, fr, de, it string) LocalizedText {
	return LocalizedText{
		LanguageES: es,
		LanguageCA: ca,
		LanguageEN: en,
		LanguageFR: fr,
		LanguageDE: de,
		LanguageIT: it,
	}
}

// EmptyLocalizedText carries every language key with an empty value.
func EmptyLocalizedText() LocalizedText {
	return LocalizedText{}.Normalize()
}

func (t LocalizedText) Get(lang Language) string {
	if t == nil {
		return ""
	}
	return t[lang]
}

// Normalize returns a copy holding exactly the supported language keys.
func (t LocalizedText) Normalize() LocalizedText {
	out := make(LocalizedText, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		out[lang] = t.Get(lang)
	}
	return out
}

type LocalizedList map[Language][]string

func (l LocalizedList) Get(lang Language) []string {
	if l == nil {
		return nil
	}
	return l[lang]
}

func (l LocalizedList) Normalize() LocalizedList {
	out := make(LocalizedList, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		items := l.Get(lang)
		cp := make([]string, len(items))
		copy(cp, items)
		out[lang] = cp
	}
	return out
}
