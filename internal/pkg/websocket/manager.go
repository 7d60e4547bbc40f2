package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// Manager manages WebSocket connections and per-alert subscriptions
type Manager struct {
	sync.RWMutex
	clients       map[string]*models.WebSocketClient
	subscriptions map[string]map[string]struct{} // alertID -> set of userIDs
	cfg           models.JWTConfig
	upgrader      websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients:       make(map[string]*models.WebSocketClient),
		subscriptions: make(map[string]map[string]struct{}),
		cfg:           jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes a client and drops all its alert subscriptions
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
	for alertID, subscribers := range m.subscriptions {
		delete(subscribers, userID)
		if len(subscribers) == 0 {
			delete(m.subscriptions, alertID)
		}
	}
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// Subscribe registers a client for events of a single alert
func (m *Manager) Subscribe(userID, alertID string) {
	m.Lock()
	defer m.Unlock()
	if m.subscriptions[alertID] == nil {
		m.subscriptions[alertID] = make(map[string]struct{})
	}
	m.subscriptions[alertID][userID] = struct{}{}
}

// Unsubscribe removes a client's subscription for a single alert
func (m *Manager) Unsubscribe(userID, alertID string) {
	m.Lock()
	defer m.Unlock()
	if subscribers, ok := m.subscriptions[alertID]; ok {
		delete(subscribers, userID)
		if len(subscribers) == 0 {
			delete(m.subscriptions, alertID)
		}
	}
}

// SubscriberCount returns the number of clients watching an alert
func (m *Manager) SubscriberCount(alertID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.subscriptions[alertID])
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a notification to a specific client
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// BroadcastAll delivers an event to every connected client
func (m *Manager) BroadcastAll(event string, data interface{}) {
	m.RLock()
	clients := make([]*models.WebSocketClient, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.RUnlock()

	for _, client := range clients {
		if err := m.SendMessage(client.Conn, event, data); err != nil {
			logger.Warn("Error broadcasting to client",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// BroadcastToAlert delivers an event to every client subscribed to the alert
func (m *Manager) BroadcastToAlert(alertID string, event string, data interface{}) {
	m.RLock()
	subscribers := make([]*models.WebSocketClient, 0, len(m.subscriptions[alertID]))
	for userID := range m.subscriptions[alertID] {
		if client, ok := m.clients[userID]; ok {
			subscribers = append(subscribers, client)
		}
	}
	m.RUnlock()

	for _, client := range subscribers {
		if err := m.SendMessage(client.Conn, event, data); err != nil {
			logger.Warn("Error broadcasting to subscriber",
				logger.String("user_id", client.UserID),
				logger.String("alert_id", alertID),
				logger.Err(err))
		}
	}
}
