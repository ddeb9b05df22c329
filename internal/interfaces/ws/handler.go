package ws

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/radityasurya/cricket-arena/internal/platform/logging"
)

// Handler upgrades HTTP requests onto the hub. An empty origin allowlist
// admits every origin; "*" does the same explicitly.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *logging.Logger
}

func NewHandler(hub *Hub, allowedOrigins []string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	allowAll := len(allowedOrigins) == 0
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowAll {
					return true
				}
				origin := strings.TrimSpace(r.Header.Get("Origin"))
				if origin == "" {
					return true
				}
				_, ok := allowMap[origin]
				return ok
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	select {
	case h.hub.register <- c:
	case <-h.hub.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}
