// Package i18n is a pure locale dictionary lookup. It owns no state and knows
// nothing about the session or conversation engines.
package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Locale identifies a supported dictionary.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// Params carries substitution values for parameterized entries.
// Values are rendered with %v, so strings and numbers both work.
type Params map[string]any

// T resolves key against the requested locale's dictionary. Lookup falls back
// to English, then to the raw key. Placeholders use {name} syntax.
func T(locale Locale, key string, params Params) string {
	entry, ok := messages[locale][key]
	if !ok {
		entry, ok = messages[LocaleEN][key]
	}
	if !ok {
		entry = key
	}
	return substitute(entry, params)
}

func substitute(entry string, params Params) string {
	if len(params) == 0 || !strings.Contains(entry, "{") {
		return entry
	}
	out := entry
	for name, value := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return out
}

// Detect picks a locale from the environment, zh for Chinese locales and en
// otherwise. Mirrors the usual LC_ALL > LC_MESSAGES > LANG precedence.
func Detect() Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			if strings.HasPrefix(strings.ToLower(v), "zh") {
				return LocaleZH
			}
			return LocaleEN
		}
	}
	return LocaleEN
}

// Parse maps a configured locale string to a Locale; "auto" defers to Detect.
func Parse(s string) Locale {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zh":
		return LocaleZH
	case "en":
		return LocaleEN
	default:
		return Detect()
	}
}

// Toggle flips between the two supported locales.
func Toggle(l Locale) Locale {
	if l == LocaleZH {
		return LocaleEN
	}
	return LocaleZH
}
