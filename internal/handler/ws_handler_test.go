package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/service"
	"github.com/pathlight/corpsite-backend/internal/ws"
)

func dialActivityStream(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	h := NewWSHandler(rdb, zerolog.Nop(), nil)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set(middleware.ContextKeyClaims, &service.Claims{AdminID: 1})
	}, h.ActivityStream)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// Every ping must come back as a pong frame; replies go out through the
// stream's single write loop.
func TestActivityStreamAnswersPings(t *testing.T) {
	conn := dialActivityStream(t)

	for i := 0; i < 10; i++ {
		if err := conn.WriteJSON(ws.RequestEnvelope{Action: ws.ActionPing}); err != nil {
			t.Fatalf("ping %d: %v", i, err)
		}

		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var ev ws.ActivityEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("pong %d: %v", i, err)
		}
		if ev.Event != ws.EventPong {
			t.Fatalf("pong %d: event = %q", i, ev.Event)
		}
	}
}

func TestActivityStreamRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	h := NewWSHandler(rdb, zerolog.Nop(), nil)

	r := gin.New()
	r.GET("/ws", h.ActivityStream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	if _, resp, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Fatal("expected handshake failure without claims")
	} else if resp != nil && resp.StatusCode != 401 {
		t.Fatalf("handshake status = %d, want 401", resp.StatusCode)
	}
}
