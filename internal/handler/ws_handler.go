package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"gatepass/internal/notify"
)

// Dashboards are served same-origin in production and from file:// during
// development, so origin checking is skipped.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler attaches dashboard websocket clients to the notifier hub.
type WSHandler struct {
	hub *notify.Hub
}

// NewWSHandler creates a new websocket handler.
func NewWSHandler(hub *notify.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Subscribe upgrades the connection and registers it for change signals.
func (h *WSHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	h.hub.Serve(conn)
	return nil
}
