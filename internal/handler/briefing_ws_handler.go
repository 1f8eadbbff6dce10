package handler

import (
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/internal/service"
	internalWS "github.com/annaddsgr/Portfolio/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// BriefingWsHandler lets the briefing page follow its session: delivery
// outcomes and the deep link to open are pushed over this socket.
type BriefingWsHandler struct {
	service service.IBriefingService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewBriefingWsHandler(service service.IBriefingService, hub *internalWS.Hub, log logger.ILogger) *BriefingWsHandler {
	return &BriefingWsHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

// ServeWs validates the session before upgrading; the session id is the
// only credential a briefing has.
func (h *BriefingWsHandler) ServeWs(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return service.ErrBriefingNotFound
	}
	if !h.service.Exists(id) {
		return service.ErrBriefingNotFound
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionID := id.String()
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("BriefingWsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
		internalWS.ServeWs(h.hub, conn, sessionID)
		h.logger.Info("BriefingWsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}

func (h *BriefingWsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/briefing/:id", h.ServeWs)
}
