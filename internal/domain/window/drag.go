package window

import "github.com/xpdesk/backend/internal/shared/types"

// BeginDrag starts a title-bar drag. Refused while the window is
// maximized or minimized, and entirely in mobile viewport mode.
func (m *Manager) BeginDrag(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[id]
	if !ok || win.State != types.StateNormal || m.viewport.Mobile {
		return false
	}

	win.Dragging = true
	win.DragOffset = types.Offset{}
	m.dragStart[id] = win.Geometry.Position
	return true
}

// DragTo updates the transient transform offset from the drag start point.
// Layout coordinates are not committed; only the offset moves, so
// observers can render the window translated without the model position
// changing under them.
func (m *Manager) DragTo(id string, dx, dy int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[id]
	if !ok || !win.Dragging {
		return false
	}

	win.DragOffset = types.Offset{DX: dx, DY: dy}
	return true
}

// EndDrag commits the drag: the final position is the drag-start position
// plus the total pointer delta, clamped to the viewport policy. The
// committed position replaces the transform and becomes the window's new
// restore-geometry baseline.
func (m *Manager) EndDrag(id string, dx, dy int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[id]
	if !ok || !win.Dragging {
		return false
	}

	start := m.dragStart[id]
	final := types.Position{X: start.X + dx, Y: start.Y + dy}
	win.Geometry.Position = clampPosition(final, win.Geometry.Size, m.viewport)
	win.RestoreGeometry = win.Geometry
	win.Dragging = false
	win.DragOffset = types.Offset{}
	delete(m.dragStart, id)
	return true
}
