package window

import "github.com/xpdesk/backend/internal/shared/types"

// Every window is bound to exactly one content frame. Inbound protocol
// messages are attributed to a window through this table; messages from
// unbound frames are ignored by the router.

// BindFrame associates a content frame id with a window, replacing the
// window's previous binding (a reloaded frame re-registers under a new
// id). Returns false for unknown windows.
func (m *Manager) BindFrame(frameID, windowID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[windowID]
	if !ok {
		return false
	}

	delete(m.frames, win.FrameID)
	win.FrameID = frameID
	m.frames[frameID] = windowID
	return true
}

// WindowForFrame resolves which window a content frame belongs to.
// Pure lookup; unknown frames resolve to false.
func (m *Manager) WindowForFrame(frameID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.frames[frameID]
	return id, ok
}

// NotifyContentLoaded re-sends the window's current maximize state to its
// content frame. Sent redundantly on load so late-loading content is never
// out of sync with actual window state.
func (m *Manager) NotifyContentLoaded(frameID string) {
	m.mu.Lock()
	id, ok := m.frames[frameID]
	if !ok {
		m.mu.Unlock()
		return
	}
	win := m.windows[id]
	maximized := win.State == types.StateMaximized || m.viewport.Mobile
	notifier := m.notifier
	m.mu.Unlock()

	if notifier == nil {
		return
	}
	msg := types.FrameMessage{Type: types.MsgWindowUnmaximized}
	if maximized {
		msg.Type = types.MsgWindowMaximized
	}
	notifier.NotifyFrame(frameID, msg)
}

// SetStatusText updates a window's status bar text. The caller is
// responsible for sanitizing text originating from embedded content.
func (m *Manager) SetStatusText(id, text string) bool {
	return m.updateChrome(id, func(c *types.Chrome) {
		c.StatusText = text
	})
}

// SetHomeEnabled toggles the home toolbar button for one window
func (m *Manager) SetHomeEnabled(id string, enabled bool) bool {
	return m.updateChrome(id, func(c *types.Chrome) {
		c.HomeEnabled = enabled
		for i := range c.Toolbar {
			if c.Toolbar[i].ID == "home" {
				c.Toolbar[i].Enabled = enabled
			}
		}
	})
}

// SetLightboxState records the lightbox open state and external link
// target reported by a window's content.
func (m *Manager) SetLightboxState(id string, open bool, linkType, linkURL string) bool {
	return m.updateChrome(id, func(c *types.Chrome) {
		c.LightboxOpen = open
		c.LinkType = linkType
		c.LinkURL = linkURL
		if !open {
			c.LinkType = ""
			c.LinkURL = ""
		}
	})
}

// SetDescriptionState records the description panel open state for one window
func (m *Manager) SetDescriptionState(id string, open bool) bool {
	return m.updateChrome(id, func(c *types.Chrome) {
		c.DescriptionOpen = open
	})
}

// OpenDropdown expands one menu on a window's menu bar; any previously
// open dropdown on that window closes. Unknown menu ids are ignored.
func (m *Manager) OpenDropdown(id, menuID string) bool {
	return m.updateChrome(id, func(c *types.Chrome) {
		for _, menu := range c.MenuBar {
			if menu.ID == menuID {
				c.OpenDropdown = menuID
				return
			}
		}
	})
}

// CloseDropdowns collapses any open dropdown on one window. Used when the
// window's embedded content receives focus.
func (m *Manager) CloseDropdowns(id string) bool {
	return m.updateChrome(id, func(c *types.Chrome) {
		c.OpenDropdown = ""
	})
}

// updateChrome applies a mutation to one window's chrome state under the
// lock. Unknown ids and chrome-less windows are no-ops.
func (m *Manager) updateChrome(id string, fn func(*types.Chrome)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[id]
	if !ok || win.Chrome == nil {
		return false
	}
	fn(win.Chrome)
	return true
}
