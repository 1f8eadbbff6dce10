package service

import (
	"context"
	"encoding/json"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventRelay forwards lifecycle events off the process, typically to NATS.
type EventRelay interface {
	Publish(ctx context.Context, event events.Event) error
}

// SessionNotifier pushes a message to the browser tabs following a session.
type SessionNotifier interface {
	Push(sessionID, msgType string, data interface{}) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	relay     EventRelay
	notifier  SessionNotifier
	logger    logger.ILogger
}

// NewConsumerService drains the briefing topic. relay and notifier may be nil.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	relay EventRelay,
	notifier SessionNotifier,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		relay:     relay,
		notifier:  notifier,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.BriefingEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal briefing event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // poison message, do not redeliver
		return
	}

	details := map[string]interface{}{
		"type":       payload.Type,
		"session_id": payload.SessionId.String(),
	}
	if payload.FileName != "" {
		details["file_name"] = payload.FileName
	}
	if payload.Outcome != "" {
		details["outcome"] = payload.Outcome
	}
	if payload.Error != "" {
		details["error"] = payload.Error
	}
	cs.logger.Info("ConsumerService", "Briefing event", details)

	if cs.relay != nil {
		evt := events.BaseEvent{
			Type:       payload.Type,
			Data:       details,
			OccurredAt: payload.OccurredAt,
		}
		if err := cs.relay.Publish(ctx, evt); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to relay briefing event", map[string]interface{}{
				"type":  payload.Type,
				"error": err.Error(),
			})
		}
	}

	if cs.notifier != nil && payload.Type != events.BriefingStarted {
		if err := cs.notifier.Push(payload.SessionId.String(), "briefing_event", payload); err != nil {
			cs.logger.Debug("ConsumerService", "No live client for session", map[string]interface{}{
				"session_id": payload.SessionId.String(),
			})
		}
	}

	msg.Ack()
}
