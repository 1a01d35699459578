package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edge-marketplace/marketplace/internal/api/metrics"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// ChangeFeed hands out per-client channels of store changes.
type ChangeFeed interface {
	Register() (string, <-chan ports.Change)
	Unregister(id string)
}

// EventsHandler streams store changes over a WebSocket so clients know when
// to refetch.
type EventsHandler struct {
	feed     ChangeFeed
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler accepts connections from any origin in allowedOrigins; an
// empty list or "*" admits every origin.
func NewEventsHandler(feed ChangeFeed, allowedOrigins []string, log zerolog.Logger) *EventsHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	_, wildcard := allowed["*"]

	return &EventsHandler{
		feed: feed,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || wildcard || len(allowed) == 0 {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Stream handles GET /v1/events.
//
// @Summary      Store change feed (WebSocket)
// @Tags         events
// @Success      101
// @Router       /v1/events [get]
func (h *EventsHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return nil
	}
	defer conn.Close()

	id, changes := h.feed.Register()
	defer h.feed.Unregister(id)

	metrics.EventSubscribers.Inc()
	defer metrics.EventSubscribers.Dec()

	log := h.log.With().Str("client_id", id).Logger()
	log.Debug().Msg("change feed client connected")

	done := make(chan struct{})
	go h.readPump(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			log.Debug().Msg("change feed client disconnected")
			return nil
		case change, ok := <-changes:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return nil
			}
			if err := conn.WriteJSON(change); err != nil {
				log.Debug().Err(err).Msg("change feed write failed")
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed.
func (h *EventsHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
