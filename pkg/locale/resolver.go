// Package locale resolves localized text with a multi-level fallback chain:
// requested language, neutral language, any populated entry, then the static
// phrase dictionary, then the raw neutral phrase itself.
package locale

import (
	"sort"
	"strings"

	"krishi/entities"
)

// Neutral is the language every plan must at least carry.
const Neutral = "en"

var supported = map[string]bool{
	"en": true,
	"bn": true,
}

// Normalize coerces unknown language codes to the neutral language.
// It never fails.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !supported[lang] {
		return Neutral
	}
	return lang
}

// Resolve picks display text for lang: requested entry, then neutral, then
// any other populated entry (in sorted key order, so output is stable).
func Resolve(lt entities.LocalizedText, lang string) (string, bool) {
	if len(lt) == 0 {
		return "", false
	}
	lang = Normalize(lang)
	if v := lt[lang]; v != "" {
		return v, true
	}
	if v := lt[Neutral]; v != "" {
		return v, true
	}
	keys := make([]string, 0, len(lt))
	for k := range lt {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := lt[k]; v != "" {
			return v, true
		}
	}
	return "", false
}

// ResolveWithFallback resolves lt, backfilling from the phrase dictionary
// keyed by the canonical neutral phrase when lt has nothing usable. Plans
// generated before localized fields existed only carry the neutral string;
// the dictionary supplies translations for the known agronomic phrases
// without a data migration. When even that misses, the key is returned
// verbatim.
func ResolveWithFallback(lt entities.LocalizedText, key, lang string) string {
	if v, ok := Resolve(lt, lang); ok {
		return v
	}
	if dict, ok := Phrases[key]; ok {
		if v, ok := Resolve(dict, lang); ok {
			return v
		}
	}
	return key
}

// ResolveText resolves a tagged title/notes value.
func ResolveText(t entities.Text, lang string) string {
	return ResolveWithFallback(t.Localized, t.Key, lang)
}
