package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/internal/repository/memory"
	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/delivery"
	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/events"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (r *stubRenderer) Render(ctx context.Context, doc document.Document) (*document.Artifact, error) {
	r.calls.Add(1)
	if r.release != nil {
		<-r.release
	}
	if r.err != nil {
		return nil, r.err
	}
	return &document.Artifact{
		FileName:    document.FileName(doc.ClientName),
		ContentType: document.ContentType,
		Data:        []byte("%PDF-1.3"),
		Pages:       2,
	}, nil
}

type stubDispatcher struct {
	calls atomic.Int32
	last  delivery.Request
	err   error
}

func (d *stubDispatcher) Dispatch(ctx context.Context, req delivery.Request) (*delivery.Result, error) {
	d.calls.Add(1)
	d.last = req
	if d.err != nil {
		return nil, d.err
	}
	return &delivery.Result{
		Outcome:     delivery.OutcomeFallback,
		Message:     "ok",
		FileName:    req.Artifact.FileName,
		DownloadURL: "http://localhost/dl",
		DeepLink:    "https://wa.me/1",
	}, nil
}

type recordingPublisher struct {
	mu    sync.Mutex
	types []string
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	var msg dto.BriefingEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	p.mu.Lock()
	p.types = append(p.types, msg.Type)
	p.mu.Unlock()
	return nil
}

func (p *recordingPublisher) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.types...)
}

type fixture struct {
	svc        IBriefingService
	renderer   *stubRenderer
	dispatcher *stubDispatcher
	publisher  *recordingPublisher
}

func newFixture() *fixture {
	f := &fixture{
		renderer:   &stubRenderer{},
		dispatcher: &stubDispatcher{},
		publisher:  &recordingPublisher{},
	}
	f.svc = NewBriefingService(
		memory.NewSessionRepository(time.Minute),
		f.renderer,
		f.dispatcher,
		f.publisher,
		i18n.Portuguese,
		logger.NewNopLogger(),
	)
	return f
}

// readySession walks a new session to the last step with a service chosen.
func (f *fixture) readySession(t *testing.T) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	st, err := f.svc.Start(ctx, &dto.StartBriefingRequest{})
	require.NoError(t, err)

	_, err = f.svc.UpdateFields(ctx, &dto.UpdateBriefingFieldsRequest{
		Id:     st.Id,
		Fields: map[string]string{"name": "Maria Clara", "service": "Identidade Visual"},
	})
	require.NoError(t, err)

	for i := briefing.FirstStep; i < briefing.LastStep; i++ {
		st, err = f.svc.Advance(ctx, st.Id)
		require.NoError(t, err)
	}
	require.Equal(t, briefing.LastStep, st.Step)
	return st.Id
}

func TestStart_UsesRequestedLocale(t *testing.T) {
	f := newFixture()

	st, err := f.svc.Start(context.Background(), &dto.StartBriefingRequest{Locale: "en-US"})
	require.NoError(t, err)
	assert.Equal(t, "en", st.Locale)
	assert.Equal(t, briefing.FirstStep, st.Step)
	assert.Equal(t, briefing.Answers{}, st.Answers)
	assert.Equal(t, []string{events.BriefingStarted}, f.publisher.seen())
}

func TestShow_UnknownSession(t *testing.T) {
	_, err := newFixture().svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBriefingNotFound)
}

func TestUpdateFields_UnknownFieldWritesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st, _ := f.svc.Start(ctx, nil)

	_, err := f.svc.UpdateFields(ctx, &dto.UpdateBriefingFieldsRequest{
		Id:     st.Id,
		Fields: map[string]string{"name": "Ana", "favoriteColor": "blue"},
	})
	assert.ErrorIs(t, err, briefing.ErrUnknownField)

	st, err = f.svc.Show(ctx, st.Id)
	require.NoError(t, err)
	assert.Empty(t, st.Answers.Name)
}

func TestAdvance_BlockedWithoutService(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	st, _ := f.svc.Start(ctx, nil)

	for i := 0; i < 4; i++ {
		st, _ = f.svc.Advance(ctx, st.Id)
	}

	assert.Equal(t, briefing.ServiceStep, st.Step)
	require.NotNil(t, st.Blocked)
	assert.Equal(t, "service", st.Blocked.Field)
}

func TestRetreatAndReset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.readySession(t)

	st, err := f.svc.Retreat(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, briefing.LastStep-1, st.Step)

	st, err = f.svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, briefing.FirstStep, st.Step)
	assert.Equal(t, briefing.Answers{}, st.Answers)
}

func TestSubmit_NotAtFinalStep(t *testing.T) {
	f := newFixture()
	st, _ := f.svc.Start(context.Background(), nil)

	_, err := f.svc.Submit(context.Background(), st.Id)
	assert.ErrorIs(t, err, ErrNotAtFinalStep)
	assert.Zero(t, f.renderer.calls.Load())
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture()
	id := f.readySession(t)

	res, err := f.svc.Submit(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, delivery.OutcomeFallback, res.Outcome)
	assert.Equal(t, "Briefing_AnnaForm_Maria_Clara.pdf", res.FileName)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "Maria Clara", f.dispatcher.last.Summary.ClientName)
	assert.Equal(t, id.String(), f.dispatcher.last.SessionID)
	assert.Equal(t, []string{
		events.BriefingStarted,
		events.BriefingSubmitted,
		events.BriefingDelivered,
	}, f.publisher.seen())

	st, _ := f.svc.Show(context.Background(), id)
	assert.False(t, st.Submitting, "flag is cleared after completion")
}

func TestSubmit_GenerationFailure(t *testing.T) {
	f := newFixture()
	f.renderer.err = errors.New("font table corrupt")
	id := f.readySession(t)

	res, err := f.svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	require.NotNil(t, res)
	assert.Equal(t, delivery.OutcomeFailed, res.Outcome)
	assert.Equal(t, i18n.T(i18n.Portuguese, i18n.OutcomeFailed), res.Message)
	assert.Zero(t, f.dispatcher.calls.Load(), "nothing is dispatched without an artifact")

	// the flag is released so the user can retry
	f.renderer.err = nil
	_, err = f.svc.Submit(context.Background(), id)
	assert.NoError(t, err)
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	f := newFixture()
	f.dispatcher.err = delivery.ErrDownloadUnavailable
	id := f.readySession(t)

	res, err := f.svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, delivery.OutcomeFailed, res.Outcome)
	assert.Contains(t, f.publisher.seen(), events.BriefingFailed)
}

func TestSubmit_ConcurrentCallIsRejected(t *testing.T) {
	f := newFixture()
	f.renderer.release = make(chan struct{})
	id := f.readySession(t)

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(context.Background(), id)
		done <- err
	}()

	require.Eventually(t, func() bool { return f.renderer.calls.Load() == 1 }, time.Second, time.Millisecond)

	st, err := f.svc.Show(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, st.Submitting)
	assert.False(t, st.CanSubmit)

	_, err = f.svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(f.renderer.release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), f.renderer.calls.Load())
	assert.Equal(t, int32(1), f.dispatcher.calls.Load())
}

func TestSubmit_AnswersAreFrozen(t *testing.T) {
	f := newFixture()
	f.renderer.release = make(chan struct{})
	id := f.readySession(t)

	done := make(chan struct{})
	go func() {
		_, _ = f.svc.Submit(context.Background(), id)
		close(done)
	}()
	require.Eventually(t, func() bool { return f.renderer.calls.Load() == 1 }, time.Second, time.Millisecond)

	_, err := f.svc.UpdateFields(context.Background(), &dto.UpdateBriefingFieldsRequest{
		Id:     id,
		Fields: map[string]string{"name": "Someone Else"},
	})
	require.NoError(t, err)

	close(f.renderer.release)
	<-done
	assert.Equal(t, "Maria Clara", f.dispatcher.last.Summary.ClientName)
}

func TestOptions(t *testing.T) {
	res := newFixture().svc.Options(i18n.English)
	assert.Len(t, res.Steps, briefing.LastStep)
	assert.Equal(t, briefing.ProjectTypes, res.ProjectTypes)
}
