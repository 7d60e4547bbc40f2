package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	wspkg "github.com/sentinela-app/sentinela/internal/pkg/websocket"
)

// DeskHandler serves desk operator WebSocket sessions. Operators
// subscribe per alert; there is no backlog replay across reconnects,
// clients resubscribe and refetch the latest state over HTTP.
type DeskHandler struct {
	manager *wspkg.Manager
}

// NewDeskHandler creates a new desk WebSocket handler
func NewDeskHandler(manager *wspkg.Manager) *DeskHandler {
	return &DeskHandler{
		manager: manager,
	}
}

// HandleConnection upgrades and serves a desk session
func (h *DeskHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

// serveClient runs the read loop for one desk session
func (h *DeskHandler) serveClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("Desk session connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Debug("Desk session disconnected",
				logger.String("user_id", client.UserID),
				logger.Err(err))
			return nil
		}

		if err := h.handleMessage(client, conn, msg); err != nil {
			logger.Warn("Failed to handle desk message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// handleMessage dispatches a single message from a desk session
func (h *DeskHandler) handleMessage(client *models.WebSocketClient, conn *websocket.Conn, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventSubscribe:
		return h.handleSubscribe(client, conn, msg.Data)
	case constants.EventUnsubscribe:
		return h.handleUnsubscribe(client, conn, msg.Data)
	case constants.EventPing:
		return h.manager.SendMessage(conn, constants.EventPong, nil)
	default:
		return h.manager.SendErrorMessage(conn, constants.ReasonMissingRequiredField, "Unknown event: "+msg.Event)
	}
}

func (h *DeskHandler) handleSubscribe(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var req models.WSSubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.AlertID == "" {
		return h.manager.SendErrorMessage(conn, constants.ReasonMissingRequiredField, "alert_id is required")
	}

	h.manager.Subscribe(client.UserID, req.AlertID)

	return h.manager.SendMessage(conn, constants.EventSubscribed, req)
}

func (h *DeskHandler) handleUnsubscribe(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var req models.WSSubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.AlertID == "" {
		return h.manager.SendErrorMessage(conn, constants.ReasonMissingRequiredField, "alert_id is required")
	}

	h.manager.Unsubscribe(client.UserID, req.AlertID)
	return nil
}

// NotifyAlertCreated pushes a new alert to every connected desk session
func (h *DeskHandler) NotifyAlertCreated(event *models.AlertCreatedEvent) {
	h.manager.BroadcastAll(constants.EventAlertCreated, event)
}

// NotifyAlertStatus pushes a status transition to the alert's watchers
func (h *DeskHandler) NotifyAlertStatus(event *models.AlertStatusEvent) {
	h.manager.BroadcastToAlert(event.AlertID, constants.EventAlertStatus, event)
}

// NotifyPositionUpdate pushes a position sample to the alert's watchers
func (h *DeskHandler) NotifyPositionUpdate(event *models.PositionUpdateEvent) {
	h.manager.BroadcastToAlert(event.AlertID, constants.EventPositionUpdate, event)
}
