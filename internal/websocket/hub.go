package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/annaddsgr/Portfolio/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "briefing_ws_events"

var ErrNoClient = errors.New("no websocket client for session")

// Message is the envelope written to the browser.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	// Registered clients: briefing session id -> open tabs
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client
	// closed when Run returns
	done     chan struct{}
	doneOnce sync.Once

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, may be nil
	rdb        *redis.Client
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.doneOnce.Do(func() { close(h.done) })

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// attach hands c to Run; false once the hub has stopped.
func (h *Hub) attach(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// detach hands c back to Run; after shutdown there is nobody to receive.
func (h *Hub) detach(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Open asks the browser following sessionID to open url (the deep link of
// the fallback path).
func (h *Hub) Open(ctx context.Context, sessionID, url string) error {
	return h.Push(sessionID, "open_link", map[string]string{"url": url})
}

// Push sends a message to every tab of sessionID. It fails with ErrNoClient
// only when no tab is known here and there is no cluster to forward to.
func (h *Hub) Push(sessionID, msgType string, data interface{}) error {
	payload, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		return err
	}

	delivered := h.deliverLocal(sessionID, payload)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"origin":            h.instanceID,
			"target_session_id": sessionID,
			"message":           json.RawMessage(payload),
		})
		if err := h.rdb.Publish(context.Background(), clusterChannel, envelope).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to publish to cluster", map[string]interface{}{"error": err.Error()})
		} else {
			return nil
		}
	}

	if !delivered {
		return ErrNoClient
	}
	return nil
}

// ClientCount reports the tabs currently following sessionID.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) deliverLocal(sessionID string, payload []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.clients[sessionID]
	if !ok {
		return false
	}

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			// slow tab; the outcome is also in the HTTP response
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": sessionID})
		}
	}
	return true
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			Origin          string          `json:"origin"`
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
			continue
		}

		// local tabs were already served by Push
		if payload.Origin == h.instanceID {
			continue
		}
		h.deliverLocal(payload.TargetSessionID, payload.Message)
	}
}
