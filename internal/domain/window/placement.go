package window

import "github.com/xpdesk/backend/internal/shared/types"

// Cascade placement: windows step diagonally from a fixed origin; after
// cascadePerColumn windows the cascade restarts one column to the right,
// wrapping back to the first column after cascadeColumns columns.
const (
	cascadeOriginX      = 48
	cascadeOriginY      = 36
	cascadeStepX        = 26
	cascadeStepY        = 26
	cascadePerColumn    = 8
	cascadeColumnOffset = 220
	cascadeColumns      = 4
)

// Minimum on-screen margins a committed window position must keep
const (
	minVisibleWidth  = 50
	minVisibleHeight = 20
)

// placeLocked picks the initial position for a new window: the program's
// custom anchor when configured, the shared cascade otherwise.
// Caller must hold mu.
func (m *Manager) placeLocked(cfg *types.ProgramConfig, size types.Size) types.Position {
	if cfg.Position != nil && cfg.Position.Type == types.PositionCustom {
		return m.anchoredPositionLocked(cfg.Position, size)
	}
	return m.cascadePositionLocked(size)
}

// cascadePositionLocked returns the next slot in the diagonal cascade.
// Caller must hold mu.
func (m *Manager) cascadePositionLocked(size types.Size) types.Position {
	index := m.cascadeCount
	m.cascadeCount++

	column := (index / cascadePerColumn) % cascadeColumns
	row := index % cascadePerColumn

	pos := types.Position{
		X: cascadeOriginX + column*cascadeColumnOffset + row*cascadeStepX,
		Y: cascadeOriginY + row*cascadeStepY,
	}

	// Keep the bottom edge above the taskbar band
	maxY := m.viewport.Height - m.viewport.TaskbarHeight - size.Height
	if pos.Y > maxY {
		pos.Y = maxY
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return pos
}

// anchoredPositionLocked resolves a custom placement hint: offsets from a
// screen edge, or absolute coordinates when unanchored. Caller must hold mu.
func (m *Manager) anchoredPositionLocked(hint *types.PositionHint, size types.Size) types.Position {
	usableHeight := m.viewport.Height - m.viewport.TaskbarHeight

	switch hint.Anchor {
	case types.AnchorTopLeft:
		return types.Position{X: hint.X, Y: hint.Y}
	case types.AnchorTopRight:
		return types.Position{X: m.viewport.Width - size.Width - hint.X, Y: hint.Y}
	case types.AnchorBottomLeft:
		return types.Position{X: hint.X, Y: usableHeight - size.Height - hint.Y}
	case types.AnchorBottomRight:
		return types.Position{
			X: m.viewport.Width - size.Width - hint.X,
			Y: usableHeight - size.Height - hint.Y,
		}
	default:
		return types.Position{X: hint.X, Y: hint.Y}
	}
}

// clampPosition constrains a window position so that at least
// minVisibleWidth x minVisibleHeight of the window stays on screen, the
// top edge never goes above y=0, and the bottom stays above the taskbar
// band. The same policy applies to drag commits and to newly placed
// windows.
func clampPosition(pos types.Position, size types.Size, v types.Viewport) types.Position {
	minX := -(size.Width - minVisibleWidth)
	maxX := v.Width - minVisibleWidth
	minY := 0
	maxY := v.Height - v.TaskbarHeight - minVisibleHeight

	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	if pos.X < minX {
		pos.X = minX
	}
	if pos.X > maxX {
		pos.X = maxX
	}
	if pos.Y < minY {
		pos.Y = minY
	}
	if pos.Y > maxY {
		pos.Y = maxY
	}
	return pos
}
