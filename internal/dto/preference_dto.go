package dto

type UpdatePreferencesRequest struct {
	Theme         *string `json:"theme" validate:"omitempty,oneof=light dark"`
	FontScale     *int    `json:"fontSize" validate:"omitempty,min=1"`
	HighContrast  *bool   `json:"highContrast"`
	CookieConsent *bool   `json:"cookieConsent"`
	// Action applies a relative change after the absolute fields.
	Action string `json:"action" validate:"omitempty,oneof=increase_font decrease_font reset"`
}

type PreferencesResponse struct {
	VisitorId     string `json:"visitor_id"`
	Theme         string `json:"theme"`
	FontScale     int    `json:"fontSize"`
	HighContrast  bool   `json:"highContrast"`
	CookieConsent bool   `json:"cookieConsent"`
}
