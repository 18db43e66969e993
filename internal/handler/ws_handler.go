/*
Package handler provides the HTTP handler function for the WebSocket chat
transport.

The WebSocket surface mirrors the REST message endpoint: the client sends one
text frame per turn and receives either the assistant reply or a structured
error. Browsers cannot set the Authorization header on WebSocket requests, so
the session token travels in the "token" query parameter instead.
*/
package handler

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"carai/internal/app/session"
	"carai/internal/pkg/auth/jwt"
	"carai/internal/pkg/errs"
	"carai/internal/pkg/limiter"
	"carai/internal/pkg/logx"
	"carai/internal/pkg/resp"
)

const (
	// writeWait is the deadline for a single outbound frame write.
	writeWait = 10 * time.Second

	// pongWait is how long the connection may stay silent before it is
	// considered dead. Pings go out at pingPeriod to keep it alive.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// maxFrameSize bounds inbound frames. Messages are text-only here, so the
	// limit mirrors the REST message cap with headroom for the envelope.
	maxFrameSize = 32 * 1024
)

// ClientFrame is an inbound WebSocket frame.
type ClientFrame struct {
	Type    string `json:"type"` // "message"
	Content string `json:"content"`
}

// ServerFrame is an outbound WebSocket frame.
type ServerFrame struct {
	Type    string `json:"type"` // "display", "reply", or "error"
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// HandleWebSocket upgrades the connection and runs the turn loop for the
// caller's session. Each inbound message frame runs one conversation turn;
// the reply or a classified error goes back on the same connection.
func HandleWebSocket(upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("WebSocket connection rejected: Rate limit exceeded.", "ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		token := r.URL.Query().Get("token")
		if token == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		payload, err := jwt.ParseToken(token, deps.Config.JWTSecret)
		if err != nil {
			logx.Warn("WebSocket connection rejected: invalid token", "error", err)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		sess, customErr := deps.Sessions.Get(payload.SessionID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		logx.Info("WebSocket connection established", "username", sess.Username, "session_id", sess.ID)

		serveSession(r.Context(), conn, sess)
	}
}

// serveSession runs the read loop for one connection until the client goes
// away. A write mutex serializes turn replies with keepalive pings.
func serveSession(ctx context.Context, conn *websocket.Conn, sess *session.Session) {
	defer conn.Close()

	var writeMu sync.Mutex

	writeFrame := func(frame ServerFrame) error {
		writeMu.Lock()
		defer writeMu.Unlock()

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(frame)
	}

	conn.SetReadLimit(maxFrameSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	stopPing := make(chan struct{})
	defer close(stopPing)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				writeMu.Lock()
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				err := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()

				if err != nil {
					return
				}
			case <-stopPing:
				return
			}
		}
	}()

	// Opening frame: the current display window, so the client can render
	// without a separate REST call.
	if err := writeFrame(ServerFrame{Type: "display", Data: sess.DisplayWindow()}); err != nil {
		return
	}

	for {
		var frame ClientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logx.Warn("WebSocket read failed", "session_id", sess.ID, "error", err)
			}
			return
		}

		if frame.Type != "message" {
			writeError(writeFrame, errs.NewError(errs.ErrInvalidParams))
			continue
		}

		content := strings.TrimSpace(frame.Content)
		if content == "" {
			writeError(writeFrame, errs.NewError(errs.ErrEmptyMessage))
			continue
		}

		if utf8.RuneCountInString(content) > MaxMessageRunes {
			writeError(writeFrame, errs.NewError(errs.ErrMessageContentTooLong))
			continue
		}

		reply, customErr := sess.Submit(ctx, content, nil)
		if customErr != nil {
			writeError(writeFrame, customErr)
			continue
		}

		if err := writeFrame(ServerFrame{Type: "reply", Data: reply}); err != nil {
			return
		}
	}
}

func writeError(writeFrame func(ServerFrame) error, customErr *errs.CustomError) {
	_ = writeFrame(ServerFrame{
		Type:    "error",
		Code:    customErr.Code,
		Message: customErr.Message,
	})
}
