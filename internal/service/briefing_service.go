package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/entity"
	"github.com/annaddsgr/Portfolio/internal/mapper"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/internal/repository/contract"
	"github.com/annaddsgr/Portfolio/internal/tracer"
	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/delivery"
	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/events"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrBriefingNotFound   = errors.New("briefing session not found")
	ErrNotAtFinalStep     = errors.New("briefing can only be submitted from the last step")
	ErrSubmissionInFlight = errors.New("briefing submission already in progress")
	ErrGenerationFailed   = errors.New("briefing document could not be generated")
	ErrDeliveryFailed     = errors.New("briefing document could not be delivered")
)

type IBriefingService interface {
	Start(ctx context.Context, req *dto.StartBriefingRequest) (*dto.BriefingStateResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error)
	UpdateFields(ctx context.Context, req *dto.UpdateBriefingFieldsRequest) (*dto.BriefingStateResponse, error)
	Advance(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error)
	Retreat(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error)
	Reset(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error)
	Submit(ctx context.Context, id uuid.UUID) (*dto.SubmitBriefingResponse, error)
	Options(locale i18n.Locale) *dto.BriefingOptionsResponse
	Exists(id uuid.UUID) bool
}

// IDispatcher is satisfied by *delivery.Dispatcher.
type IDispatcher interface {
	Dispatch(ctx context.Context, req delivery.Request) (*delivery.Result, error)
}

type briefingService struct {
	sessions      contract.BriefingSessionRepository
	renderer      document.IRenderer
	dispatcher    IDispatcher
	publisher     IPublisherService
	mapper        *mapper.BriefingMapper
	defaultLocale i18n.Locale
	now           func() time.Time
	logger        logger.ILogger
}

func NewBriefingService(
	sessions contract.BriefingSessionRepository,
	renderer document.IRenderer,
	dispatcher IDispatcher,
	publisher IPublisherService,
	defaultLocale i18n.Locale,
	log logger.ILogger,
) IBriefingService {
	return &briefingService{
		sessions:      sessions,
		renderer:      renderer,
		dispatcher:    dispatcher,
		publisher:     publisher,
		mapper:        mapper.NewBriefingMapper(),
		defaultLocale: defaultLocale,
		now:           time.Now,
		logger:        log,
	}
}

func (s *briefingService) Start(ctx context.Context, req *dto.StartBriefingRequest) (*dto.BriefingStateResponse, error) {
	locale := s.defaultLocale
	if req != nil && req.Locale != "" {
		locale = i18n.ParseLocale(req.Locale)
	}

	session := entity.NewBriefingSession(uuid.New(), locale, s.now())
	s.sessions.Save(session)

	s.logger.Info("BriefingService", "Briefing session started", map[string]interface{}{
		"session_id": session.Id.String(),
		"locale":     string(locale),
	})
	s.emit(ctx, dto.BriefingEventMessage{Type: events.BriefingStarted, SessionId: session.Id, Step: briefing.FirstStep})

	return s.mapper.ToStateResponse(session, session.Snapshot()), nil
}

func (s *briefingService) Show(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error) {
	session, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToStateResponse(session, session.Snapshot()), nil
}

func (s *briefingService) Exists(id uuid.UUID) bool {
	_, ok := s.sessions.Get(id)
	return ok
}

// UpdateFields applies the batch atomically: an unknown field name rejects
// the whole request and nothing is written.
func (s *briefingService) UpdateFields(ctx context.Context, req *dto.UpdateBriefingFieldsRequest) (*dto.BriefingStateResponse, error) {
	session, err := s.find(req.Id)
	if err != nil {
		return nil, err
	}

	type update struct {
		field briefing.Field
		value string
	}
	updates := make([]update, 0, len(req.Fields))
	for name, value := range req.Fields {
		field, err := briefing.ParseField(name)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update{field: field, value: value})
	}

	snap := session.Mutate(s.now(), func(f *briefing.Form) {
		for _, u := range updates {
			f.SetField(u.field, u.value)
		}
	})
	s.sessions.Touch(session)

	return s.mapper.ToStateResponse(session, snap), nil
}

// Advance is a no-op when the current step does not allow it; the returned
// state tells the caller why.
func (s *briefingService) Advance(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error) {
	return s.navigate(id, "advance", (*briefing.Form).Advance)
}

func (s *briefingService) Retreat(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error) {
	return s.navigate(id, "retreat", (*briefing.Form).Retreat)
}

func (s *briefingService) navigate(id uuid.UUID, action string, move func(*briefing.Form) bool) (*dto.BriefingStateResponse, error) {
	session, err := s.find(id)
	if err != nil {
		return nil, err
	}

	var moved bool
	snap := session.Mutate(s.now(), func(f *briefing.Form) {
		moved = move(f)
	})
	s.sessions.Touch(session)

	s.logger.Debug("BriefingService", "Step navigation", map[string]interface{}{
		"session_id": id.String(),
		"action":     action,
		"moved":      moved,
		"step":       snap.Step,
	})

	return s.mapper.ToStateResponse(session, snap), nil
}

func (s *briefingService) Reset(ctx context.Context, id uuid.UUID) (*dto.BriefingStateResponse, error) {
	session, err := s.find(id)
	if err != nil {
		return nil, err
	}

	snap := session.Mutate(s.now(), (*briefing.Form).Reset)
	s.sessions.Touch(session)

	return s.mapper.ToStateResponse(session, snap), nil
}

// Submit renders the frozen answers and hands the PDF to the dispatcher.
// Only one submission per session runs at a time; a concurrent call gets
// ErrSubmissionInFlight and produces nothing.
func (s *briefingService) Submit(ctx context.Context, id uuid.UUID) (*dto.SubmitBriefingResponse, error) {
	session, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if !session.TryBeginSubmit() {
		return nil, ErrSubmissionInFlight
	}
	defer session.EndSubmit()

	snap := session.Snapshot()
	if snap.Step != briefing.LastStep {
		return nil, ErrNotAtFinalStep
	}
	answers := snap.Answers
	tr := i18n.For(session.Locale)

	ctx, span := tracer.Briefing().Start(ctx, "briefing.submit")
	defer span.End()
	span.SetAttributes(attribute.String("briefing.session_id", id.String()))

	s.emit(ctx, dto.BriefingEventMessage{Type: events.BriefingSubmitted, SessionId: id, Step: snap.Step})

	artifact, err := s.renderer.Render(ctx, briefing.Document(answers, tr, s.now()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		s.logger.Error("BriefingService", "Failed to generate briefing PDF", map[string]interface{}{
			"session_id": id.String(),
			"error":      err.Error(),
		})
		s.emit(ctx, dto.BriefingEventMessage{Type: events.BriefingFailed, SessionId: id, Error: err.Error(), Outcome: string(delivery.OutcomeFailed)})
		return failedResponse(tr), fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	span.SetAttributes(attribute.Int("briefing.pages", artifact.Pages))

	result, err := s.dispatcher.Dispatch(ctx, delivery.Request{
		SessionID: id.String(),
		Artifact:  artifact,
		Summary: delivery.Summary{
			ClientName: answers.Name,
			BrandName:  answers.BrandName,
			Service:    answers.Service,
		},
		Locale: session.Locale,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		s.logger.Error("BriefingService", "Failed to deliver briefing PDF", map[string]interface{}{
			"session_id": id.String(),
			"file_name":  artifact.FileName,
			"error":      err.Error(),
		})
		s.emit(ctx, dto.BriefingEventMessage{Type: events.BriefingFailed, SessionId: id, FileName: artifact.FileName, Error: err.Error(), Outcome: string(delivery.OutcomeFailed)})
		return failedResponse(tr), fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.emit(ctx, dto.BriefingEventMessage{
		Type:      events.BriefingDelivered,
		SessionId: id,
		FileName:  artifact.FileName,
		Pages:     artifact.Pages,
		Outcome:   string(result.Outcome),
	})

	return &dto.SubmitBriefingResponse{Result: *result, Pages: artifact.Pages}, nil
}

func (s *briefingService) Options(locale i18n.Locale) *dto.BriefingOptionsResponse {
	return s.mapper.ToOptionsResponse(locale)
}

func (s *briefingService) find(id uuid.UUID) (*entity.BriefingSession, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrBriefingNotFound
	}
	return session, nil
}

// emit never fails the caller; lifecycle events are best effort.
func (s *briefingService) emit(ctx context.Context, evt dto.BriefingEventMessage) {
	if s.publisher == nil {
		return
	}
	evt.OccurredAt = s.now()

	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("BriefingService", "Failed to publish briefing event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}
}

func failedResponse(tr i18n.Translator) *dto.SubmitBriefingResponse {
	return &dto.SubmitBriefingResponse{
		Result: delivery.Result{
			Outcome: delivery.OutcomeFailed,
			Message: tr.T(i18n.OutcomeFailed),
		},
	}
}
