package preferences

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

// Patch carries the settings a visitor changed; nil fields are left alone.
type Patch struct {
	Theme         *string
	FontScale     *int
	HighContrast  *bool
	CookieConsent *bool
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load reads every key once. A failing store yields the defaults together
// with the error so callers can still render.
func (s *Service) Load(ctx context.Context, visitorID string) (Settings, error) {
	var firstErr error
	settings := decode(func(key string) (string, bool) {
		v, ok, err := s.store.Get(ctx, visitorID, key)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v, ok && err == nil
	})
	if firstErr != nil {
		return Defaults(), fmt.Errorf("failed to load preferences: %w", firstErr)
	}
	return settings, nil
}

// Update applies the patch and writes only the keys whose value changed.
func (s *Service) Update(ctx context.Context, visitorID string, p Patch) (Settings, error) {
	current, err := s.Load(ctx, visitorID)
	if err != nil {
		return current, err
	}

	next := current
	if p.Theme != nil {
		if *p.Theme != ThemeLight && *p.Theme != ThemeDark {
			return current, ErrInvalidTheme
		}
		next.Theme = *p.Theme
	}
	if p.FontScale != nil {
		next.FontScale = ClampFontScale(*p.FontScale)
	}
	if p.HighContrast != nil {
		next.HighContrast = *p.HighContrast
	}
	if p.CookieConsent != nil && *p.CookieConsent {
		// consent is acknowledged once and never withdrawn from here
		next.CookieConsent = true
	}

	return next, s.save(ctx, visitorID, current, next)
}

// Reset restores the accessibility defaults, keeping cookie consent.
func (s *Service) Reset(ctx context.Context, visitorID string) (Settings, error) {
	current, err := s.Load(ctx, visitorID)
	if err != nil {
		return current, err
	}
	next := current.Reset()
	return next, s.save(ctx, visitorID, current, next)
}

func (s *Service) save(ctx context.Context, visitorID string, before, after Settings) error {
	old := encode(before)
	for key, value := range encode(after) {
		if old[key] == value {
			continue
		}
		if err := s.store.Set(ctx, visitorID, key, value); err != nil {
			return fmt.Errorf("failed to save preference %s: %w", key, err)
		}
	}
	return nil
}
