package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/xpdesk/backend/internal/domain/chrome"
	"github.com/xpdesk/backend/internal/domain/events"
	"github.com/xpdesk/backend/internal/domain/frames"
	"github.com/xpdesk/backend/internal/domain/registry"
	"github.com/xpdesk/backend/internal/domain/window"
	"github.com/xpdesk/backend/internal/shared/types"
)

type wireMessage struct {
	Type    string          `json:"type"`
	Event   string          `json:"event,omitempty"`
	Payload *events.Payload `json:"payload,omitempty"`
	FrameID string          `json:"frame_id,omitempty"`
}

func newTestStack(t *testing.T) (*window.Manager, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := registry.NewManager()
	err := reg.Register(&types.ProgramConfig{
		ID:         "about",
		Title:      "About Me",
		Icon:       "about.png",
		Dimensions: types.Size{Width: 600, Height: 400},
		ContentRef: "/apps/about/index.html",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	bus := events.NewBus()
	viewport := types.Viewport{Width: 1280, Height: 800, TaskbarHeight: 40}
	windows := window.NewManager(reg, chrome.NewBuilder(), bus, viewport)
	router := frames.NewRouter(windows, nil)

	handler := NewHandler(windows, router, bus, nil)
	windows.SetFrameNotifier(handler)
	return windows, handler
}

func dialTestServer(t *testing.T, handler *Handler) *websocket.Conn {
	t.Helper()

	engine := gin.New()
	engine.GET("/stream", handler.HandleConnection)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// First message is the connection greeting
	var hello map[string]interface{}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("Missing greeting: %v", err)
	}
	if hello["type"] != "system" {
		t.Fatalf("Expected system greeting, got %v", hello)
	}
	return conn
}

// readUntil reads stream messages until one satisfies the predicate
func readUntil(t *testing.T, conn *websocket.Conn, want func(wireMessage) bool) wireMessage {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		var msg wireMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if want(msg) {
			return msg
		}
	}
	t.Fatal("Expected message never arrived")
	return wireMessage{}
}

func TestOpenProgramOverWebSocket(t *testing.T) {
	windows, handler := newTestStack(t)
	conn := dialTestServer(t, handler)

	err := conn.WriteJSON(map[string]string{"type": "open_program", "program": "about"})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	created := readUntil(t, conn, func(m wireMessage) bool {
		return m.Type == "event" && m.Event == string(events.WindowCreated)
	})
	if created.Payload == nil || created.Payload.WindowID != "about-window" {
		t.Errorf("Unexpected created payload: %+v", created.Payload)
	}

	readUntil(t, conn, func(m wireMessage) bool {
		return m.Type == "event" && m.Event == string(events.WindowFocused)
	})

	if _, ok := windows.Get("about-window"); !ok {
		t.Error("Window should exist after the control message")
	}
}

func TestWindowOpsOverWebSocket(t *testing.T) {
	windows, handler := newTestStack(t)
	conn := dialTestServer(t, handler)

	conn.WriteJSON(map[string]string{"type": "open_program", "program": "about"})
	readUntil(t, conn, func(m wireMessage) bool {
		return m.Event == string(events.WindowFocused)
	})

	conn.WriteJSON(map[string]string{"type": "minimize_window", "window_id": "about-window"})
	readUntil(t, conn, func(m wireMessage) bool {
		return m.Event == string(events.WindowMinimized)
	})

	if win, _ := windows.Get("about-window"); win.State != types.StateMinimized {
		t.Error("Minimize control message not applied")
	}

	conn.WriteJSON(map[string]string{"type": "taskbar_click", "window_id": "about-window"})
	readUntil(t, conn, func(m wireMessage) bool {
		return m.Event == string(events.WindowRestored)
	})
}

func TestMaximizeEmitsFrameEnvelope(t *testing.T) {
	windows, handler := newTestStack(t)
	conn := dialTestServer(t, handler)

	conn.WriteJSON(map[string]string{"type": "open_program", "program": "about"})
	readUntil(t, conn, func(m wireMessage) bool {
		return m.Event == string(events.WindowFocused)
	})

	conn.WriteJSON(map[string]string{"type": "maximize_window", "window_id": "about-window"})

	envelope := readUntil(t, conn, func(m wireMessage) bool {
		return m.Type == "frame_event"
	})
	win, _ := windows.Get("about-window")
	if envelope.FrameID != win.FrameID {
		t.Errorf("Envelope targets %s, window frame is %s", envelope.FrameID, win.FrameID)
	}
}

func TestFrameMessageRouting(t *testing.T) {
	windows, handler := newTestStack(t)
	conn := dialTestServer(t, handler)

	conn.WriteJSON(map[string]string{"type": "open_program", "program": "about"})
	readUntil(t, conn, func(m wireMessage) bool {
		return m.Event == string(events.WindowFocused)
	})
	win, _ := windows.Get("about-window")

	conn.WriteJSON(map[string]interface{}{
		"type":     "frame_message",
		"frame_id": win.FrameID,
		"message":  map[string]string{"type": "minimize-window"},
	})

	readUntil(t, conn, func(m wireMessage) bool {
		return m.Event == string(events.WindowMinimized)
	})
}

func TestPing(t *testing.T) {
	_, handler := newTestStack(t)
	conn := dialTestServer(t, handler)

	conn.WriteJSON(map[string]string{"type": "ping"})

	var msg map[string]interface{}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if msg["type"] != "pong" {
		t.Errorf("Expected pong, got %v", msg)
	}
}

func TestUnknownControlMessageIgnored(t *testing.T) {
	_, handler := newTestStack(t)
	conn := dialTestServer(t, handler)

	conn.WriteJSON(map[string]string{"type": "format_disk"})
	conn.WriteJSON(map[string]string{"type": "ping"})

	var msg map[string]interface{}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if msg["type"] != "pong" {
		t.Errorf("Connection should survive unknown messages, got %v", msg)
	}
}

func TestClientCount(t *testing.T) {
	_, handler := newTestStack(t)

	if handler.ClientCount() != 0 {
		t.Fatal("Expected no clients before connecting")
	}

	conn := dialTestServer(t, handler)
	defer conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for handler.ClientCount() != 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if handler.ClientCount() != 1 {
		t.Error("Expected one connected client")
	}
}
