package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Locale  string `json:"locale" validate:"omitempty,max=10"`
}

type ContactResponse struct {
	DeepLink string `json:"deep_link"`
	Emailed  bool   `json:"emailed"`
}
