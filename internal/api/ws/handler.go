package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/domain/events"
	"github.com/xpdesk/backend/internal/domain/frames"
	"github.com/xpdesk/backend/internal/domain/window"
	"github.com/xpdesk/backend/internal/infrastructure/monitoring"
	"github.com/xpdesk/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Same-origin enforcement happens at the CORS layer
	},
}

// inbound is the control message shape the desktop shell sends
type inbound struct {
	Type     string              `json:"type"`
	Program  string              `json:"program,omitempty"`
	WindowID string              `json:"window_id,omitempty"`
	FrameID  string              `json:"frame_id,omitempty"`
	MenuID   string              `json:"menu_id,omitempty"`
	DX       int                 `json:"dx"`
	DY       int                 `json:"dy"`
	Viewport *types.Viewport     `json:"viewport,omitempty"`
	Message  *types.FrameMessage `json:"message,omitempty"`
}

// client is one connected desktop shell
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex // Serializes writes; gorilla allows one writer at a time
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Handler manages WebSocket connections. Every connected shell receives
// the full event stream; inbound control messages drive window manager
// operations. The handler doubles as the window manager's FrameNotifier,
// pushing outbound frame protocol messages through the same connections.
type Handler struct {
	windows *window.Manager
	router  *frames.Router
	bus     *events.Bus
	logger  *zap.Logger
	metrics *monitoring.Metrics

	mu      sync.RWMutex
	clients map[string]*client
}

// NewHandler creates a WebSocket handler and subscribes it to the bus
func NewHandler(windows *window.Manager, router *frames.Router, bus *events.Bus, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		windows: windows,
		router:  router,
		bus:     bus,
		logger:  logger,
		clients: make(map[string]*client),
	}

	bus.SubscribeAll(h.broadcastEvent)
	return h
}

// WithMetrics adds metrics tracking to the handler
func (h *Handler) WithMetrics(metrics *monitoring.Metrics) *Handler {
	h.metrics = metrics
	return h
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{id: uuid.NewString(), conn: conn}
	h.register(cl)
	defer h.unregister(cl)

	cl.send(gin.H{
		"type":     "system",
		"message":  "Connected to Desktop Service (Go)",
		"viewport": h.windows.Viewport(),
	})

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket read error",
					zap.String("client", cl.id),
					zap.Error(err),
				)
			}
			return
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("inbound", msg.Type)
		}
		h.dispatch(cl, msg)
	}
}

func (h *Handler) dispatch(cl *client, msg inbound) {
	switch msg.Type {
	case "open_program":
		h.windows.OpenProgram(msg.Program)
	case "close_window":
		h.windows.Close(msg.WindowID)
	case "focus_window":
		h.windows.BringToFront(msg.WindowID)
	case "minimize_window":
		h.windows.Minimize(msg.WindowID)
	case "restore_window":
		h.windows.Restore(msg.WindowID)
	case "maximize_window":
		h.windows.ToggleMaximize(msg.WindowID)
	case "taskbar_click":
		h.windows.HandleTaskbarClick(msg.WindowID)
	case "desktop_click":
		h.windows.DeactivateAll()
	case "drag_start":
		h.windows.BeginDrag(msg.WindowID)
	case "drag_move":
		h.windows.DragTo(msg.WindowID, msg.DX, msg.DY)
	case "drag_end":
		h.windows.EndDrag(msg.WindowID, msg.DX, msg.DY)
	case "viewport":
		if msg.Viewport != nil && msg.Viewport.Width > 0 && msg.Viewport.Height > 0 {
			h.windows.SetViewport(*msg.Viewport)
		}
	case "open_dropdown":
		h.windows.OpenDropdown(msg.WindowID, msg.MenuID)
	case "close_dropdowns":
		h.windows.CloseDropdowns(msg.WindowID)
	case "startmenu_open":
		h.bus.Publish(events.Event{Type: events.StartMenuOpened})
	case "startmenu_close":
		h.bus.Publish(events.Event{Type: events.StartMenuClosed})
	case "bind_frame":
		h.windows.BindFrame(msg.FrameID, msg.WindowID)
	case "content_loaded":
		h.windows.NotifyContentLoaded(msg.FrameID)
	case "frame_message":
		if msg.Message != nil {
			h.router.HandleMessage(msg.FrameID, *msg.Message)
		}
	case "ping":
		cl.send(gin.H{"type": "pong"})
	default:
		h.logger.Debug("Ignoring unknown control message",
			zap.String("client", cl.id),
			zap.String("type", msg.Type),
		)
	}
}

// NotifyFrame implements window.FrameNotifier. The shell owns the actual
// iframes, so frame-bound messages ride the event stream wrapped in an
// envelope naming the target frame.
func (h *Handler) NotifyFrame(frameID string, msg types.FrameMessage) {
	h.broadcast(gin.H{
		"type":     "frame_event",
		"frame_id": frameID,
		"message":  msg,
	})
	if h.metrics != nil {
		h.metrics.RecordWSMessage("outbound", string(msg.Type))
	}
}

// broadcastEvent forwards one bus event to every connected shell
func (h *Handler) broadcastEvent(e events.Event) {
	h.broadcast(gin.H{
		"type":    "event",
		"event":   e.Type,
		"payload": e.Payload,
	})
	if h.metrics != nil {
		h.metrics.RecordWSMessage("outbound", string(e.Type))
	}
}

func (h *Handler) broadcast(v interface{}) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, cl := range h.clients {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		if err := cl.send(v); err != nil {
			h.logger.Debug("Dropping undeliverable broadcast",
				zap.String("client", cl.id),
				zap.Error(err),
			)
		}
	}
}

func (h *Handler) register(cl *client) {
	h.mu.Lock()
	h.clients[cl.id] = cl
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSConnected(1)
	}
	h.logger.Info("Shell connected", zap.String("client", cl.id))
}

func (h *Handler) unregister(cl *client) {
	h.mu.Lock()
	delete(h.clients, cl.id)
	h.mu.Unlock()

	cl.conn.Close()
	if h.metrics != nil {
		h.metrics.WSConnected(-1)
	}
	h.logger.Info("Shell disconnected", zap.String("client", cl.id))
}

// ClientCount returns the number of connected shells
func (h *Handler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
