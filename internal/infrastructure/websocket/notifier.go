package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"voltmarket/internal/domain/entity"
	"voltmarket/pkg/logger"
)

// Client is one connected account owner.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Notifier pushes approval events to connected users. Delivery is best
// effort: events for offline users are dropped, the underlying state lives
// on the profile document.
type Notifier struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewNotifier() *Notifier {
	return &Notifier{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the notifier's registration loop in a goroutine.
func (n *Notifier) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-n.Register:
				n.mutex.Lock()
				if prev, ok := n.clients[client.UserID]; ok && prev != client {
					// A reconnect displaces the previous connection.
					close(prev.Send)
				}
				n.clients[client.UserID] = client
				n.mutex.Unlock()
				logger.Debug("Notification client registered: %s", client.UserID)

			case client := <-n.Unregister:
				n.mutex.Lock()
				// A displaced connection's teardown must not tear down the
				// registration of the connection that replaced it.
				if current, ok := n.clients[client.UserID]; ok && current == client {
					delete(n.clients, client.UserID)
					close(client.Send)
				}
				n.mutex.Unlock()
				logger.Debug("Notification client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Notify sends an event to one user, if connected.
func (n *Notifier) Notify(userID string, notification entity.Notification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		logger.Error("Failed to encode notification for %s: %v", userID, err)
		return
	}

	n.mutex.RLock()
	client, ok := n.clients[userID]
	n.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- payload:
	default:
		// Slow consumer; drop the event rather than block the caller.
		logger.Warn("Dropping notification for %s: send buffer full", userID)
	}
}

// ReadPump drains the connection until it closes. Clients do not send
// anything meaningful; reading is what notices the disconnect.
func (c *Client) ReadPump(n *Notifier) {
	defer func() {
		n.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Notification read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Notification write error: %v", err)
			return
		}
	}
}
