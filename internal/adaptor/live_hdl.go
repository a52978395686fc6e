package adaptor

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"rating-catalog/internal/snapshot"
)

const (
	liveWriteTimeout = 10 * time.Second
	livePingInterval = 30 * time.Second
)

// LiveHandler streams full collection snapshots to browsers over a
// websocket. Every admin mutation triggers a fresh push; clients
// replace their local state wholesale on each message.
type LiveHandler struct {
	hub      *snapshot.Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewLiveHandler(hub *snapshot.Hub, log *zap.Logger) *LiveHandler {
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
			// Same policy as the HTTP CORS middleware: any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With(zap.String("handler", "live")),
	}
}

// Feed handles GET /api/live
func (h *LiveHandler) Feed(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	sub := h.hub.Subscribe()
	h.log.Info("Live feed client connected", zap.String("remote", r.RemoteAddr))

	// Reader drains control frames and signals disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		h.hub.Unsubscribe(sub)
		conn.Close()
		h.log.Info("Live feed client disconnected", zap.String("remote", r.RemoteAddr))
	}()

	ticker := time.NewTicker(livePingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-sub:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Warn("Live feed write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
