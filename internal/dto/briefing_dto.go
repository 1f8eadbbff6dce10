package dto

import (
	"time"

	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/delivery"

	"github.com/google/uuid"
)

type StartBriefingRequest struct {
	Locale string `json:"locale" validate:"omitempty,max=10"`
}

type UpdateBriefingFieldsRequest struct {
	Id     uuid.UUID
	Fields map[string]string `json:"fields" validate:"required,min=1,dive,max=5000"`
}

type BriefingStepResponse struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

type BriefingStateResponse struct {
	Id         uuid.UUID        `json:"id"`
	Locale     string           `json:"locale"`
	Step       int              `json:"step"`
	StepTitle  string           `json:"step_title"`
	Steps      int              `json:"steps"`
	CanAdvance bool             `json:"can_advance"`
	CanRetreat bool             `json:"can_retreat"`
	CanSubmit  bool             `json:"can_submit"`
	Submitting bool             `json:"submitting"`
	Blocked    *BlockedHint     `json:"blocked,omitempty"`
	Answers    briefing.Answers `json:"answers"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// BlockedHint tells the UI why the next button is disabled.
type BlockedHint struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type BriefingOptionsResponse struct {
	Steps           []BriefingStepResponse `json:"steps"`
	Services        []string               `json:"services"`
	ProjectTypes    []string               `json:"project_types"`
	InvestmentBands []string               `json:"investment_bands"`
}

type SubmitBriefingResponse struct {
	delivery.Result
	Pages int `json:"pages"`
}

// BriefingEventMessage travels on the in-process bus and is relayed to NATS.
type BriefingEventMessage struct {
	Type       string    `json:"type"`
	SessionId  uuid.UUID `json:"session_id"`
	Step       int       `json:"step,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	Pages      int       `json:"pages,omitempty"`
	Outcome    string    `json:"outcome,omitempty"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
