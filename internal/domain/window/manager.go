package window

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/domain/events"
	"github.com/xpdesk/backend/internal/infrastructure/monitoring"
	"github.com/xpdesk/backend/internal/shared/types"
)

// zIndexBase is the stacking index assigned to the bottom of the z-order
// stack; each position above it adds one.
const zIndexBase = 100

// windowIDSuffix derives a window id from its program key. One window per
// program key, so the mapping is stable across open/close cycles.
const windowIDSuffix = "-window"

// frameIDSuffix derives the content frame id bound to a window at creation
const frameIDSuffix = "-frame"

// ProgramSource resolves program keys to configurations
type ProgramSource interface {
	Get(key string) (*types.ProgramConfig, bool)
}

// ChromeBuilder assembles a window's chrome from its configuration
type ChromeBuilder interface {
	Build(cfg *types.ProgramConfig) (*types.Chrome, error)
}

// FrameNotifier delivers outbound protocol messages to a window's content
// frame. Delivery is asynchronous and best-effort; the model never waits
// on it.
type FrameNotifier interface {
	NotifyFrame(frameID string, msg types.FrameMessage)
}

// Manager owns the set of open windows, their stacking order, and their
// taskbar items. All state is private and mutated only through methods;
// every mutation of the z-order stack is followed by a full z-index
// recompute before the method returns.
type Manager struct {
	mu       sync.Mutex
	programs ProgramSource
	chrome   ChromeBuilder
	bus      *events.Bus
	logger   *zap.Logger
	metrics  *monitoring.Metrics
	notifier FrameNotifier

	windows   map[string]*types.Window      // Protected by mu
	taskbar   map[string]*types.TaskbarItem // Protected by mu
	stack     []string                      // Protected by mu; oldest-focused first
	focusedID string                        // Protected by mu; "" when no focus
	frames    map[string]string             // Protected by mu; frameID -> windowID
	dragStart map[string]types.Position     // Protected by mu
	viewport  types.Viewport                // Protected by mu

	cascadeCount int // Protected by mu
}

// NewManager creates a window manager for the given registry, chrome
// builder, bus, and initial viewport.
func NewManager(programs ProgramSource, chrome ChromeBuilder, bus *events.Bus, viewport types.Viewport) *Manager {
	return &Manager{
		programs:  programs,
		chrome:    chrome,
		bus:       bus,
		logger:    zap.NewNop(),
		windows:   make(map[string]*types.Window),
		taskbar:   make(map[string]*types.TaskbarItem),
		frames:    make(map[string]string),
		dragStart: make(map[string]types.Position),
		viewport:  viewport,
	}
}

// WithLogger attaches a logger to the manager
func (m *Manager) WithLogger(logger *zap.Logger) *Manager {
	m.logger = logger
	return m
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// SetFrameNotifier wires the outbound side of the cross-frame protocol.
// Typically implemented by the WebSocket hub.
func (m *Manager) SetFrameNotifier(n FrameNotifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifier = n
}

// WireBus subscribes the manager to the bus events that trigger window
// operations (program open requests, taskbar clicks).
func (m *Manager) WireBus() {
	m.bus.Subscribe(events.ProgramOpen, func(e events.Event) {
		m.OpenProgram(e.Payload.ProgramName)
	})
}

// WindowIDFor returns the window id a program key maps to
func WindowIDFor(programKey string) string {
	return programKey + windowIDSuffix
}

// OpenProgram opens the window for a program key. If the window already
// exists it is restored or brought to front instead; at most one window
// exists per program key. Unknown keys and chrome build failures are
// logged no-ops returning (nil, false).
func (m *Manager) OpenProgram(key string) (*types.Window, bool) {
	id := WindowIDFor(key)

	m.mu.Lock()

	// Single-instance guard: the only place this invariant is enforced
	if existing, ok := m.windows[id]; ok {
		var pending []events.Event
		if existing.State == types.StateMinimized {
			pending = m.restoreLocked(existing)
		} else {
			pending = m.bringToFrontLocked(existing)
		}
		snapshot := cloneWindow(existing)
		m.mu.Unlock()
		m.publish(pending)
		return snapshot, true
	}

	cfg, ok := m.programs.Get(key)
	if !ok {
		m.mu.Unlock()
		m.logger.Warn("Unknown program key", zap.String("program", key))
		return nil, false
	}

	c, err := m.chrome.Build(cfg)
	if err != nil {
		m.mu.Unlock()
		m.logger.Error("Chrome build failed, window not created",
			zap.String("program", key),
			zap.Error(err),
		)
		return nil, false
	}

	size := cfg.Dimensions
	pos := m.placeLocked(cfg, size)
	pos = clampPosition(pos, size, m.viewport)
	geo := types.Geometry{Position: pos, Size: size}

	win := &types.Window{
		ID:              id,
		ProgramKey:      key,
		Title:           cfg.Title,
		Icon:            cfg.Icon,
		Geometry:        geo,
		RestoreGeometry: geo,
		MinSize:         cfg.MinDimensions,
		State:           types.StateNormal,
		CanMinimize:     boolOrDefault(cfg.CanMinimize, true),
		CanMaximize:     boolOrDefault(cfg.CanMaximize, true),
		Chrome:          c,
		FrameID:         id + frameIDSuffix,
		CreatedAt:       time.Now(),
	}

	if m.viewport.Mobile {
		m.applyMaximizedGeometryLocked(win)
		win.State = types.StateMaximized
		win.MobileMaximized = true
	}

	m.windows[id] = win
	m.frames[win.FrameID] = id
	m.taskbar[id] = &types.TaskbarItem{
		WindowID: id,
		Title:    win.Title,
		Icon:     win.Icon,
	}

	pending := []events.Event{{
		Type: events.WindowCreated,
		Payload: events.Payload{
			WindowID:    id,
			ProgramName: key,
			Title:       win.Title,
			Icon:        win.Icon,
		},
	}}

	if cfg.StartMinimized {
		// Created directly into the minimized state, never focused.
		// Not a stack member, so no reindex is needed.
		win.State = types.StateMinimized
	} else {
		pending = append(pending, m.bringToFrontLocked(win)...)
	}

	if m.metrics != nil {
		m.metrics.RecordWindowOp("open")
		m.metrics.SetOpenWindows(len(m.windows))
	}

	snapshot := cloneWindow(win)
	m.mu.Unlock()
	m.publish(pending)
	return snapshot, true
}

// Close destroys a window. Idempotent: closing an unknown or already
// closed id is a no-op.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()

	win, ok := m.windows[id]
	if !ok {
		m.mu.Unlock()
		return false
	}

	delete(m.windows, id)
	delete(m.taskbar, id)
	delete(m.dragStart, id)
	delete(m.frames, win.FrameID)
	m.removeFromStackLocked(id)
	m.reindexLocked()

	pending := []events.Event{{
		Type:    events.WindowClosed,
		Payload: events.Payload{WindowID: id},
	}}

	if m.focusedID == id {
		m.focusedID = ""
		pending = append(pending, m.focusTopmostLocked()...)
	}
	m.refreshTaskbarLocked()

	if m.metrics != nil {
		m.metrics.RecordWindowOp("close")
		m.metrics.SetOpenWindows(len(m.windows))
	}

	m.mu.Unlock()
	m.publish(pending)
	return true
}

// Minimize hides a window and removes it from the z-order stack. No-op if
// the window is unknown, already minimized, or not minimizable.
func (m *Manager) Minimize(id string) bool {
	m.mu.Lock()

	win, ok := m.windows[id]
	if !ok || win.State == types.StateMinimized || !win.CanMinimize {
		m.mu.Unlock()
		return false
	}

	win.RestoreMaximized = win.State == types.StateMaximized
	win.State = types.StateMinimized
	win.Focused = false
	m.removeFromStackLocked(id)
	m.reindexLocked()

	pending := []events.Event{{
		Type:    events.WindowMinimized,
		Payload: events.Payload{WindowID: id},
	}}

	if m.focusedID == id {
		m.focusedID = ""
		pending = append(pending, m.focusTopmostLocked()...)
	}
	m.refreshTaskbarLocked()

	if m.metrics != nil {
		m.metrics.RecordWindowOp("minimize")
	}

	m.mu.Unlock()
	m.publish(pending)
	return true
}

// Restore makes a minimized window visible again, re-appends it to the top
// of the z-order stack, and focuses it. No-op if not minimized.
func (m *Manager) Restore(id string) bool {
	m.mu.Lock()

	win, ok := m.windows[id]
	if !ok || win.State != types.StateMinimized {
		m.mu.Unlock()
		return false
	}

	pending := m.restoreLocked(win)

	if m.metrics != nil {
		m.metrics.RecordWindowOp("restore")
	}

	m.mu.Unlock()
	m.publish(pending)
	return true
}

// restoreLocked clears the minimized state and focuses the window.
// The restored geometry is recomputed against the current viewport: it
// may have changed while the window was minimized. Caller must hold mu
// and have verified the window is minimized.
func (m *Manager) restoreLocked(win *types.Window) []events.Event {
	if win.RestoreMaximized || m.viewport.Mobile {
		if !win.RestoreMaximized {
			// Forced by the viewport, not chosen by the user
			win.RestoreGeometry = win.Geometry
			win.MobileMaximized = true
		}
		m.applyMaximizedGeometryLocked(win)
		win.State = types.StateMaximized
	} else {
		win.Geometry.Position = clampPosition(win.Geometry.Position, win.Geometry.Size, m.viewport)
		win.State = types.StateNormal
	}
	win.RestoreMaximized = false

	pending := []events.Event{{
		Type:    events.WindowRestored,
		Payload: events.Payload{WindowID: win.ID},
	}}
	return append(pending, m.bringToFrontLocked(win)...)
}

// ToggleMaximize switches a window between maximized and normal. The
// geometry held immediately before maximizing is reapplied exactly on
// unmaximize. Disabled entirely in mobile viewport mode.
func (m *Manager) ToggleMaximize(id string) bool {
	m.mu.Lock()

	win, ok := m.windows[id]
	if !ok || win.State == types.StateMinimized || m.viewport.Mobile {
		m.mu.Unlock()
		return false
	}

	var pending []events.Event
	var outbound types.FrameMessage

	if win.State == types.StateMaximized {
		win.Geometry = win.RestoreGeometry
		win.State = types.StateNormal
		outbound = types.FrameMessage{Type: types.MsgWindowUnmaximized}
		pending = append(pending, events.Event{
			Type:    events.WindowUnmaximized,
			Payload: events.Payload{WindowID: id},
		})
	} else {
		if !win.CanMaximize {
			m.mu.Unlock()
			return false
		}
		win.RestoreGeometry = win.Geometry
		// A drag in progress is abandoned; its transform is discarded
		win.Dragging = false
		win.DragOffset = types.Offset{}
		delete(m.dragStart, id)
		m.applyMaximizedGeometryLocked(win)
		win.State = types.StateMaximized
		outbound = types.FrameMessage{Type: types.MsgWindowMaximized}
		pending = append(pending, events.Event{
			Type:    events.WindowMaximized,
			Payload: events.Payload{WindowID: id},
		})
	}

	if m.metrics != nil {
		m.metrics.RecordWindowOp("maximize")
	}

	notifier := m.notifier
	frameID := win.FrameID
	m.mu.Unlock()

	if notifier != nil {
		notifier.NotifyFrame(frameID, outbound)
	}
	m.publish(pending)
	return true
}

// BringToFront focuses a window and moves it to the top of the z-order
// stack. No-op if the window is unknown, minimized, or already focused.
func (m *Manager) BringToFront(id string) bool {
	m.mu.Lock()

	win, ok := m.windows[id]
	if !ok || win.State == types.StateMinimized || m.focusedID == id {
		m.mu.Unlock()
		return false
	}

	pending := m.bringToFrontLocked(win)
	m.mu.Unlock()
	m.publish(pending)
	return true
}

// bringToFrontLocked deactivates every other window, activates the target,
// moves it to the top of the stack, and recomputes all z-indexes and
// taskbar active flags. Caller must hold mu.
func (m *Manager) bringToFrontLocked(win *types.Window) []events.Event {
	if win.State == types.StateMinimized {
		return nil
	}

	prev := m.focusedID
	if prev == win.ID {
		return nil
	}

	for _, other := range m.windows {
		other.Focused = false
	}
	win.Focused = true
	m.focusedID = win.ID

	m.removeFromStackLocked(win.ID)
	m.stack = append(m.stack, win.ID)
	m.reindexLocked()
	m.refreshTaskbarLocked()

	return []events.Event{{
		Type:    events.WindowFocused,
		Payload: events.Payload{WindowID: win.ID},
	}}
}

// focusTopmostLocked transfers focus to the top of the stack after the
// focused window went away. Caller must hold mu and have cleared focusedID.
func (m *Manager) focusTopmostLocked() []events.Event {
	if len(m.stack) == 0 {
		return nil
	}
	top := m.windows[m.stack[len(m.stack)-1]]
	return m.bringToFrontLocked(top)
}

// DeactivateAll clears focus from every window (desktop click)
func (m *Manager) DeactivateAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.focusedID = ""
	for _, win := range m.windows {
		win.Focused = false
	}
	m.refreshTaskbarLocked()
}

// HandleTaskbarClick implements taskbar item behavior: restore if
// minimized, minimize if focused, otherwise bring to front. Unknown ids
// are ignored.
func (m *Manager) HandleTaskbarClick(id string) {
	m.mu.Lock()
	win, ok := m.windows[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	minimized := win.State == types.StateMinimized
	focused := m.focusedID == id
	m.mu.Unlock()

	m.publish([]events.Event{{
		Type:    events.TaskbarItemClick,
		Payload: events.Payload{WindowID: id},
	}})

	switch {
	case minimized:
		m.Restore(id)
	case focused:
		m.Minimize(id)
	default:
		m.BringToFront(id)
	}
}

// SetViewport applies a viewport change: every window is re-clamped, and
// in mobile mode every window is forced into maximized presentation.
// Viewport-forced maximizes are reverted when the viewport leaves mobile;
// a maximize the user chose survives the round trip.
func (m *Manager) SetViewport(v types.Viewport) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viewport = v
	for _, win := range m.windows {
		if v.Mobile {
			if win.State == types.StateNormal {
				win.RestoreGeometry = win.Geometry
				win.State = types.StateMaximized
				win.MobileMaximized = true
			}
			if win.State == types.StateMaximized {
				m.applyMaximizedGeometryLocked(win)
			}
			continue
		}
		if win.MobileMaximized {
			win.MobileMaximized = false
			win.RestoreMaximized = false
			if win.State == types.StateMaximized {
				win.State = types.StateNormal
			}
			win.Geometry = win.RestoreGeometry
			win.Geometry.Position = clampPosition(win.Geometry.Position, win.Geometry.Size, v)
			continue
		}
		if win.State == types.StateMaximized {
			m.applyMaximizedGeometryLocked(win)
			continue
		}
		win.Geometry.Position = clampPosition(win.Geometry.Position, win.Geometry.Size, v)
	}
}

// Viewport returns the current viewport
func (m *Manager) Viewport() types.Viewport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewport
}

// removeFromStackLocked removes an id from the stack if present.
// Caller must hold mu.
func (m *Manager) removeFromStackLocked(id string) {
	for i, wid := range m.stack {
		if wid == id {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// reindexLocked reassigns every stacked window's z-index from its stack
// position. Runs after every stack mutation so higher stack position
// always means strictly higher z-index. Caller must hold mu.
func (m *Manager) reindexLocked() {
	for i, id := range m.stack {
		if win, ok := m.windows[id]; ok {
			win.ZIndex = zIndexBase + i
		}
	}
}

// refreshTaskbarLocked recomputes all taskbar active flags from scratch:
// clear everything, then set the one matching the focused window. Full
// recompute avoids drift from missed transitions. Caller must hold mu.
func (m *Manager) refreshTaskbarLocked() {
	for _, item := range m.taskbar {
		item.Active = false
	}
	if item, ok := m.taskbar[m.focusedID]; ok {
		item.Active = true
	}
}

// applyMaximizedGeometryLocked expands a window to fill the viewport minus
// the reserved taskbar band. Caller must hold mu.
func (m *Manager) applyMaximizedGeometryLocked(win *types.Window) {
	win.Geometry = types.Geometry{
		Position: types.Position{X: 0, Y: 0},
		Size: types.Size{
			Width:  m.viewport.Width,
			Height: m.viewport.Height - m.viewport.TaskbarHeight,
		},
	}
}

// publish delivers pending events after the state mutation has committed
// and the lock has been released.
func (m *Manager) publish(pending []events.Event) {
	for _, e := range pending {
		if m.metrics != nil {
			m.metrics.RecordEvent(string(e.Type))
		}
		m.bus.Publish(e)
	}
}

func boolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
