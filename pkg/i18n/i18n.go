// Package i18n holds the static translation tables of the portfolio.
//
// Keys are enumerated constants and every locale is a fixed-size array
// indexed by Key, so a missing entry is caught by TestEveryLocaleIsComplete
// instead of silently falling back to the key name at runtime.
package i18n

import "strings"

type Locale string

const (
	Portuguese Locale = "pt"
	English    Locale = "en"

	DefaultLocale = Portuguese
)

type table [keyCount]string

var tables = map[Locale]*table{
	Portuguese: &pt,
	English:    &en,
}

// ParseLocale accepts values such as "pt", "pt-BR" or "EN" and falls back
// to DefaultLocale for anything it does not know.
func ParseLocale(raw string) Locale {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(raw, "-_"); i >= 0 {
		raw = raw[:i]
	}
	if _, ok := tables[Locale(raw)]; ok {
		return Locale(raw)
	}
	return DefaultLocale
}

// Locales returns the supported locales in a stable order.
func Locales() []Locale {
	return []Locale{Portuguese, English}
}

// T returns the translation of key for locale.
func T(locale Locale, key Key) string {
	tbl, ok := tables[locale]
	if !ok {
		tbl = tables[DefaultLocale]
	}
	if key < 0 || key >= keyCount {
		return ""
	}
	if s := tbl[key]; s != "" {
		return s
	}
	return tables[DefaultLocale][key]
}

// Translator binds a locale so callers do not have to thread it around.
type Translator struct {
	Locale Locale
}

func For(locale Locale) Translator {
	return Translator{Locale: locale}
}

func (t Translator) T(key Key) string {
	return T(t.Locale, key)
}
