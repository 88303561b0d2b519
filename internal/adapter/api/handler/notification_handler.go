package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "voltmarket/internal/infrastructure/websocket"
	"voltmarket/internal/usecase"
	"voltmarket/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	notifier *ws.Notifier
	session  usecase.SessionClient
}

func NewNotificationHandler(notifier *ws.Notifier, session usecase.SessionClient) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		session:  session,
	}
}

// Connect upgrades to a websocket and streams approval events to the
// authenticated user. Browsers cannot set headers on websocket upgrades, so
// the token rides in a query param.
func (h *NotificationHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	uid, _, err := h.session.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed for %s: %v", uid, err)
		return err
	}

	client := &ws.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	h.notifier.Register <- client

	go client.WritePump()
	go client.ReadPump(h.notifier)

	return nil
}
