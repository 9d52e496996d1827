package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/ws"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the live back-office activity feed.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// ActivityStream godoc
// WS /ws/v1/admin/activity
// Upgrades to WebSocket and relays audit events published on the activity
// channel. Clients may send ping frames; everything else closes the
// connection.
func (h *WSHandler) ActivityStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("admin_id", claims.AdminID).Logger()
	wsLog.Info().Msg("Admin connected to activity feed")

	sub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.ActivityChannel())
	defer sub.Close()

	// Reader goroutine: keepalives in, connection close out. It never
	// writes to the connection itself; the select loop below is the only
	// writer, so frames cannot interleave.
	done := make(chan struct{})
	pings := make(chan struct{}, 1)
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				}
				return
			}
			if msg.Action == ws.ActionPing {
				select {
				case pings <- struct{}{}:
				default:
				}
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-done:
			wsLog.Debug().Msg("Connection closed")
			return
		case <-c.Request.Context().Done():
			return
		case <-pings:
			if err := ws.WriteTyped(conn, ws.ActivityEvent{Event: ws.EventPong}); err != nil {
				wsLog.Debug().Err(err).Msg("Write failed, dropping client")
				return
			}
		case m, ok := <-ch:
			if !ok {
				return
			}
			var entry model.OperationLog
			if err := json.Unmarshal([]byte(m.Payload), &entry); err != nil {
				wsLog.Error().Err(err).Msg("Invalid activity payload")
				continue
			}
			if err := ws.WriteTyped(conn, ws.ActivityEvent{Event: ws.EventActivity, Payload: entry}); err != nil {
				wsLog.Debug().Err(err).Msg("Write failed, dropping client")
				return
			}
		}
	}
}
