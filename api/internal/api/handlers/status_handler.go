package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/telemetry"
)

// ==============================================================================
// 1. Stream Configuration & Constants
// ==============================================================================

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Inbound frames are control messages only.
	maxMessageSize = 512
)

// The stream is read-only public data; CORS is enforced by the router.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusSource is the read side of the health poller.
type StatusSource interface {
	Endpoints() []domain.Endpoint
	Snapshot() map[string]domain.StatusUpdate
	Refresh(ctx context.Context) error
}

// ==============================================================================
// 2. The Handler Struct (Dependency Injection)
// ==============================================================================

type StatusHandler struct {
	Source StatusSource
	Hub    *telemetry.Hub
	Logger *slog.Logger
}

func NewStatusHandler(source StatusSource, hub *telemetry.Hub, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{Source: source, Hub: hub, Logger: logger}
}

// ==============================================================================
// 3. HTTP Methods
// ==============================================================================

// Snapshot handles GET /api/v1/status
// ?refresh=1 re-checks every endpoint before answering.
func (h *StatusHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "1" {
		if err := h.Source.Refresh(r.Context()); err != nil {
			HandleError(w, r, h.Logger, fmt.Errorf("status refresh: %w", err))
			return
		}
	}

	snap := h.Source.Snapshot()
	endpoints := h.Source.Endpoints()
	out := make([]domain.StatusUpdate, 0, len(endpoints))
	for _, ep := range endpoints {
		out = append(out, snap[ep.Name])
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]any{"endpoints": out})
}

// Stream handles GET /api/v1/status/stream as Server-Sent Events.
func (h *StatusHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `{"message": "Streaming unsupported"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(updates)

	ctx := r.Context()
	h.Logger.Debug("SSE status client connected", slog.String("remote_ip", r.RemoteAddr))

	// An initial comment commits the headers so clients see the stream open.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			h.Logger.Debug("SSE status client disconnected", slog.String("remote_ip", r.RemoteAddr))
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			payload, err := json.Marshal(update)
			if err != nil {
				h.Logger.Warn("Failed to encode status update", slog.Any("error", err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: status\ndata: %s\n\n", payload); err != nil {
				h.Logger.Warn("Failed to write to SSE client", slog.Any("error", err))
				return
			}
			flusher.Flush()
		}
	}
}

// WebSocket handles GET /api/v1/ws/status
func (h *StatusHandler) WebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Error("Failed to upgrade WebSocket connection", slog.String("error", err.Error()))
		return
	}

	updates := h.Hub.Subscribe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		h.readPump(ws)
	}()
	h.writePump(ws, updates, done)
}

// ==============================================================================
// 4. The Write Pump (Status Updates to the Browser)
// ==============================================================================

func (h *StatusHandler) writePump(ws *websocket.Conn, updates chan domain.StatusUpdate, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.Hub.Unsubscribe(updates)
		ws.Close()
	}()

	for {
		select {
		case <-done:
			return

		case update, ok := <-updates:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream closed"))
				return
			}
			if err := ws.WriteJSON(update); err != nil {
				h.Logger.Debug("Failed to write JSON to WebSocket", slog.String("error", err.Error()))
				return
			}

		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ==============================================================================
// 5. The Read Pump (Connection Keep-Alive)
// ==============================================================================

// readPump processes control frames and returns once the peer goes away.
func (h *StatusHandler) readPump(ws *websocket.Conn) {
	defer ws.Close()

	ws.SetReadLimit(maxMessageSize)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Logger.Warn("WebSocket closed unexpectedly", slog.String("error", err.Error()))
			}
			return
		}
	}
}
