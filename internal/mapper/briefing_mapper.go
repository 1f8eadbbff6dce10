package mapper

import (
	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/entity"
	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/i18n"
)

var stepTitles = [...]i18n.Key{
	i18n.StepIdentificationTitle,
	i18n.StepBrandTitle,
	i18n.StepProjectTitle,
	i18n.StepAestheticTitle,
	i18n.StepLogisticsTitle,
}

type BriefingMapper struct{}

func NewBriefingMapper() *BriefingMapper {
	return &BriefingMapper{}
}

func (m *BriefingMapper) ToStateResponse(s *entity.BriefingSession, snap entity.BriefingSnapshot) *dto.BriefingStateResponse {
	tr := i18n.For(s.Locale)

	res := &dto.BriefingStateResponse{
		Id:         s.Id,
		Locale:     string(s.Locale),
		Step:       snap.Step,
		StepTitle:  StepTitle(tr, snap.Step),
		Steps:      briefing.LastStep,
		CanAdvance: snap.CanAdvance,
		CanRetreat: snap.CanRetreat,
		CanSubmit:  snap.CanSubmit && !snap.Submitting,
		Submitting: snap.Submitting,
		Answers:    snap.Answers,
		UpdatedAt:  snap.UpdatedAt,
	}

	if field, blocked := briefing.BlockedHint(snap.Step, snap.Answers); blocked {
		res.Blocked = &dto.BlockedHint{
			Field:   field.String(),
			Message: tr.T(i18n.StepServiceRequiredHint),
		}
	}

	return res
}

func (m *BriefingMapper) ToOptionsResponse(locale i18n.Locale) *dto.BriefingOptionsResponse {
	tr := i18n.For(locale)

	steps := make([]dto.BriefingStepResponse, 0, briefing.LastStep)
	for i := briefing.FirstStep; i <= briefing.LastStep; i++ {
		steps = append(steps, dto.BriefingStepResponse{Index: i, Title: StepTitle(tr, i)})
	}

	return &dto.BriefingOptionsResponse{
		Steps:           steps,
		Services:        briefing.Services,
		ProjectTypes:    briefing.ProjectTypes,
		InvestmentBands: briefing.InvestmentBands,
	}
}

func StepTitle(tr i18n.Translator, step int) string {
	if step < briefing.FirstStep || step > briefing.LastStep {
		return ""
	}
	return tr.T(stepTitles[step-briefing.FirstStep])
}
