package window

import "github.com/xpdesk/backend/internal/shared/types"

// Get retrieves a window by id. The returned value is a copy; mutating it
// does not affect manager state.
func (m *Manager) Get(id string) (*types.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[id]
	if !ok {
		return nil, false
	}
	return cloneWindow(win), true
}

// List returns copies of all open windows ordered by stack position,
// minimized windows last.
func (m *Manager) List() []*types.Window {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Window, 0, len(m.windows))
	for _, id := range m.stack {
		if win, ok := m.windows[id]; ok {
			out = append(out, cloneWindow(win))
		}
	}
	for _, win := range m.windows {
		if win.State == types.StateMinimized {
			out = append(out, cloneWindow(win))
		}
	}
	return out
}

// StackOrder returns the z-order stack, oldest-focused first
func (m *Manager) StackOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.stack))
	copy(out, m.stack)
	return out
}

// FocusedID returns the focused window id, if any
func (m *Manager) FocusedID() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focusedID, m.focusedID != ""
}

// TaskbarItems returns copies of all taskbar items ordered by their
// window's creation time.
func (m *Manager) TaskbarItems() []types.TaskbarItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]types.TaskbarItem, 0, len(m.taskbar))
	for _, win := range m.windowsByCreationLocked() {
		if item, ok := m.taskbar[win.ID]; ok {
			out = append(out, *item)
		}
	}
	return out
}

// Stats returns window manager statistics
func (m *Manager) Stats() types.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	var minimized, maximized int
	for _, win := range m.windows {
		switch win.State {
		case types.StateMinimized:
			minimized++
		case types.StateMaximized:
			maximized++
		}
	}

	stats := types.Stats{
		TotalWindows:     len(m.windows),
		MinimizedWindows: minimized,
		MaximizedWindows: maximized,
	}
	if m.focusedID != "" {
		id := m.focusedID
		stats.FocusedWindowID = &id
	}
	return stats
}

// windowsByCreationLocked returns windows sorted oldest first.
// Caller must hold mu.
func (m *Manager) windowsByCreationLocked() []*types.Window {
	out := make([]*types.Window, 0, len(m.windows))
	for _, win := range m.windows {
		out = append(out, win)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.Before(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// cloneWindow deep-copies a window so callers never hold internal pointers
func cloneWindow(win *types.Window) *types.Window {
	c := *win
	if win.Chrome != nil {
		chromeCopy := *win.Chrome
		if win.Chrome.MenuBar != nil {
			chromeCopy.MenuBar = make([]types.Menu, len(win.Chrome.MenuBar))
			for i, menu := range win.Chrome.MenuBar {
				menu.Items = append([]types.MenuItemConfig(nil), menu.Items...)
				chromeCopy.MenuBar[i] = menu
			}
		}
		chromeCopy.Toolbar = append([]types.ToolbarButton(nil), win.Chrome.Toolbar...)
		if win.Chrome.AddressBar != nil {
			barCopy := *win.Chrome.AddressBar
			chromeCopy.AddressBar = &barCopy
		}
		c.Chrome = &chromeCopy
	}
	return &c
}
