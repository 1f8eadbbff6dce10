package mapper

import (
	"testing"
	"time"

	"github.com/annaddsgr/Portfolio/internal/entity"
	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStateResponse_BlockedAtServiceStep(t *testing.T) {
	s := entity.NewBriefingSession(uuid.New(), i18n.Portuguese, time.Now())
	snap := s.Mutate(time.Now(), func(f *briefing.Form) {
		f.Advance()
		f.Advance()
	})

	res := NewBriefingMapper().ToStateResponse(s, snap)

	assert.Equal(t, briefing.ServiceStep, res.Step)
	assert.False(t, res.CanAdvance)
	require.NotNil(t, res.Blocked)
	assert.Equal(t, "service", res.Blocked.Field)
	assert.Equal(t, i18n.T(i18n.Portuguese, i18n.StepServiceRequiredHint), res.Blocked.Message)
}

func TestToStateResponse_SubmitHiddenWhileSubmitting(t *testing.T) {
	s := entity.NewBriefingSession(uuid.New(), i18n.English, time.Now())
	snap := s.Mutate(time.Now(), func(f *briefing.Form) {
		f.SetField(briefing.FieldService, "Social Design")
		for f.Advance() {
		}
	})
	require.True(t, snap.CanSubmit)

	require.True(t, s.TryBeginSubmit())
	res := NewBriefingMapper().ToStateResponse(s, s.Snapshot())

	assert.True(t, res.Submitting)
	assert.False(t, res.CanSubmit)
	assert.Nil(t, res.Blocked)
	assert.Equal(t, i18n.T(i18n.English, i18n.StepLogisticsTitle), res.StepTitle)
}

func TestToOptionsResponse(t *testing.T) {
	res := NewBriefingMapper().ToOptionsResponse(i18n.Portuguese)

	require.Len(t, res.Steps, briefing.LastStep)
	assert.Equal(t, 1, res.Steps[0].Index)
	assert.Equal(t, i18n.T(i18n.Portuguese, i18n.StepIdentificationTitle), res.Steps[0].Title)
	assert.Contains(t, res.Services, "Identidade Visual")
	assert.Len(t, res.InvestmentBands, 4)
}
