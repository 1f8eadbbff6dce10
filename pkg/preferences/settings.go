// Package preferences keeps the visitor's display settings: theme, font
// scale, high contrast and cookie consent. Persistence is delegated to a
// key-value Store so the same rules work over memory, redis or postgres.
package preferences

import (
	"context"
	"strconv"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultFontScale = 100
	MinFontScale     = 80
	MaxFontScale     = 150
	FontScaleStep    = 10
)

// Storage keys and encodings match what the site already wrote to the
// browser's local storage.
const (
	KeyTheme    = "theme"
	KeyFont     = "fontSize"
	KeyContrast = "contrast"
	KeyConsent  = "anna-portfolio-consent"

	contrastHigh   = "high"
	contrastNormal = "normal"
	consentGiven   = "true"
)

type Settings struct {
	Theme         string `json:"theme"`
	FontScale     int    `json:"font_scale"`
	HighContrast  bool   `json:"high_contrast"`
	CookieConsent bool   `json:"cookie_consent"`
}

func Defaults() Settings {
	return Settings{
		Theme:     ThemeLight,
		FontScale: DefaultFontScale,
	}
}

func ClampFontScale(v int) int {
	if v < MinFontScale {
		return MinFontScale
	}
	if v > MaxFontScale {
		return MaxFontScale
	}
	return v
}

func (s Settings) IncreaseFont() Settings {
	s.FontScale = ClampFontScale(s.FontScale + FontScaleStep)
	return s
}

func (s Settings) DecreaseFont() Settings {
	s.FontScale = ClampFontScale(s.FontScale - FontScaleStep)
	return s
}

// Reset restores the accessibility settings. Cookie consent is kept.
func (s Settings) Reset() Settings {
	d := Defaults()
	d.CookieConsent = s.CookieConsent
	return d
}

// Store is a scalar key-value collaborator scoped to one visitor.
type Store interface {
	Get(ctx context.Context, visitorID, key string) (string, bool, error)
	Set(ctx context.Context, visitorID, key, value string) error
}

func encode(s Settings) map[string]string {
	out := map[string]string{
		KeyTheme:    s.Theme,
		KeyFont:     strconv.Itoa(s.FontScale),
		KeyContrast: contrastNormal,
	}
	if s.HighContrast {
		out[KeyContrast] = contrastHigh
	}
	if s.CookieConsent {
		out[KeyConsent] = consentGiven
	}
	return out
}

func decode(get func(key string) (string, bool)) Settings {
	s := Defaults()
	if v, ok := get(KeyTheme); ok && v == ThemeDark {
		s.Theme = ThemeDark
	}
	if v, ok := get(KeyContrast); ok && v == contrastHigh {
		s.HighContrast = true
	}
	if v, ok := get(KeyFont); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.FontScale = ClampFontScale(n)
		}
	}
	if v, ok := get(KeyConsent); ok && v == consentGiven {
		s.CookieConsent = true
	}
	return s
}
