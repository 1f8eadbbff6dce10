package mapper

import (
	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/pkg/preferences"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToResponse(visitorId string, s preferences.Settings) *dto.PreferencesResponse {
	return &dto.PreferencesResponse{
		VisitorId:     visitorId,
		Theme:         s.Theme,
		FontScale:     s.FontScale,
		HighContrast:  s.HighContrast,
		CookieConsent: s.CookieConsent,
	}
}

func (m *PreferenceMapper) ToPatch(req *dto.UpdatePreferencesRequest) preferences.Patch {
	return preferences.Patch{
		Theme:         req.Theme,
		FontScale:     req.FontScale,
		HighContrast:  req.HighContrast,
		CookieConsent: req.CookieConsent,
	}
}
