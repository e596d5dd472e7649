// Package localization resolves per-language content with the site-wide
// fallback chain and holds the bundled copy used when the admin left a
// field empty.
package localization

import "EportsTech/internal/entity"

// Resolve returns the first non-empty candidate, or "" when all are empty.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// Text walks record[lang], record[en], bundled[lang], bundled[en].
func Text(record entity.LocalizedText, lang entity.Language, bundled entity.LocalizedText) string {
	return Resolve(
		record.Get(lang),
		record.Get(entity.LanguageEN),
		bundled.Get(lang),
		bundled.Get(entity.LanguageEN),
	)
}

// List is Text for feature lists. The result is never nil.
func List(record entity.LocalizedList, lang entity.Language, bundled entity.LocalizedList) []string {
	for _, candidate := range [][]string{
		record.Get(lang),
		record.Get(entity.LanguageEN),
		bundled.Get(lang),
		bundled.Get(entity.LanguageEN),
	} {
		if len(candidate) > 0 {
			out := make([]string, len(candidate))
			copy(out, candidate)
			return out
		}
	}
	return []string{}
}
