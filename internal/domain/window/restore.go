package window

import "github.com/xpdesk/backend/internal/shared/types"

// ApplySnapshot reapplies persisted geometry and state to an open window.
// The normal-state geometry is applied first (re-clamped against the
// current viewport, which may differ from the one the snapshot was taken
// in), then the saved state is replayed through the regular operations so
// observers see the usual events.
func (m *Manager) ApplySnapshot(id string, snap types.WindowSnapshot) bool {
	m.mu.Lock()

	win, ok := m.windows[id]
	if !ok {
		m.mu.Unlock()
		return false
	}

	base := snap.RestoreGeometry
	if base.Size.Width <= 0 || base.Size.Height <= 0 {
		base = snap.Geometry
	}

	if win.State == types.StateNormal && base.Size.Width > 0 && base.Size.Height > 0 {
		base.Position = clampPosition(base.Position, base.Size, m.viewport)
		win.Geometry = base
		win.RestoreGeometry = base
	}
	m.mu.Unlock()

	switch snap.State {
	case types.StateMaximized:
		m.ToggleMaximize(id)
	case types.StateMinimized:
		m.Minimize(id)
	}
	return true
}
