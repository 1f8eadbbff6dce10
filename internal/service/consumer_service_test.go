package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRelay struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingRelay) Publish(ctx context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingRelay) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type recordingNotifier struct {
	mu     sync.Mutex
	pushes []string
}

func (n *recordingNotifier) Push(sessionID, msgType string, data interface{}) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushes = append(n.pushes, sessionID+"/"+msgType)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pushes)
}

func TestConsumerService_RelaysAndNotifies(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	relay := &recordingRelay{}
	notifier := &recordingNotifier{}
	consumer := NewConsumerService(pubSub, "briefing", relay, notifier, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("briefing", pubSub)
	id := uuid.New()
	for _, typ := range []string{events.BriefingStarted, events.BriefingDelivered} {
		payload, _ := json.Marshal(dto.BriefingEventMessage{Type: typ, SessionId: id, OccurredAt: time.Now()})
		require.NoError(t, publisher.Publish(context.Background(), payload))
	}

	// malformed payloads are acked and skipped
	require.NoError(t, publisher.Publish(context.Background(), []byte("{not json")))

	require.Eventually(t, func() bool { return relay.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, events.BriefingStarted, relay.events[0].EventType())
	assert.Equal(t, id.String(), relay.events[0].Payload()["session_id"])

	// started events are not pushed to the browser
	require.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, id.String()+"/briefing_event", notifier.pushes[0])
}
