package window

import (
	"testing"

	"github.com/xpdesk/backend/internal/shared/types"
)

func TestCascadePlacement(t *testing.T) {
	m, _ := newTestManager(t)
	size := types.Size{Width: 300, Height: 200}

	first := m.cascadePositionLocked(size)
	second := m.cascadePositionLocked(size)
	third := m.cascadePositionLocked(size)

	if first.X != cascadeOriginX || first.Y != cascadeOriginY {
		t.Errorf("First window belongs at the origin, got %+v", first)
	}
	if second.X != first.X+cascadeStepX || second.Y != first.Y+cascadeStepY {
		t.Errorf("Second window should step diagonally, got %+v", second)
	}
	if third.X != second.X+cascadeStepX || third.Y != second.Y+cascadeStepY {
		t.Errorf("Third window should step diagonally, got %+v", third)
	}
}

func TestCascadeColumnWrap(t *testing.T) {
	m, _ := newTestManager(t)
	size := types.Size{Width: 300, Height: 200}

	for i := 0; i < cascadePerColumn; i++ {
		m.cascadePositionLocked(size)
	}

	pos := m.cascadePositionLocked(size)
	if pos.X != cascadeOriginX+cascadeColumnOffset || pos.Y != cascadeOriginY {
		t.Errorf("Cascade should restart one column over, got %+v", pos)
	}
}

func TestCascadeWrapsToFirstColumn(t *testing.T) {
	m, _ := newTestManager(t)
	size := types.Size{Width: 300, Height: 200}

	for i := 0; i < cascadePerColumn*cascadeColumns; i++ {
		m.cascadePositionLocked(size)
	}

	pos := m.cascadePositionLocked(size)
	if pos.X != cascadeOriginX || pos.Y != cascadeOriginY {
		t.Errorf("Cascade should wrap back to the origin, got %+v", pos)
	}
}

func TestCascadeKeepsBottomAboveTaskbar(t *testing.T) {
	m, _ := newTestManager(t)

	// Tall window: any cascade row past the first would push it below
	// the taskbar band without the clamp.
	size := types.Size{Width: 400, Height: 740}
	m.cascadePositionLocked(size)
	pos := m.cascadePositionLocked(size)

	vp := testViewport()
	if pos.Y+size.Height > vp.Height-vp.TaskbarHeight {
		t.Errorf("Window bottom crosses the taskbar band at y=%d", pos.Y)
	}
	if pos.Y < 0 {
		t.Errorf("Window top above the screen at y=%d", pos.Y)
	}
}

func TestCustomAnchorBottomRight(t *testing.T) {
	m, _ := newTestManager(t)

	win, ok := m.OpenProgram("music")
	if !ok {
		t.Fatal("OpenProgram failed")
	}

	vp := testViewport()
	wantX := vp.Width - win.Geometry.Size.Width - 24
	wantY := vp.Height - vp.TaskbarHeight - win.Geometry.Size.Height - 16
	if win.Geometry.Position.X != wantX || win.Geometry.Position.Y != wantY {
		t.Errorf("Expected (%d,%d), got %+v", wantX, wantY, win.Geometry.Position)
	}
}

func TestCustomAnchorEdges(t *testing.T) {
	m, _ := newTestManager(t)
	size := types.Size{Width: 200, Height: 100}
	vp := testViewport()

	cases := []struct {
		anchor types.AnchorEdge
		want   types.Position
	}{
		{types.AnchorTopLeft, types.Position{X: 10, Y: 20}},
		{types.AnchorTopRight, types.Position{X: vp.Width - size.Width - 10, Y: 20}},
		{types.AnchorBottomLeft, types.Position{X: 10, Y: vp.Height - vp.TaskbarHeight - size.Height - 20}},
		{types.AnchorBottomRight, types.Position{
			X: vp.Width - size.Width - 10,
			Y: vp.Height - vp.TaskbarHeight - size.Height - 20,
		}},
	}

	for _, tc := range cases {
		hint := &types.PositionHint{Type: types.PositionCustom, Anchor: tc.anchor, X: 10, Y: 20}
		got := m.anchoredPositionLocked(hint, size)
		if got != tc.want {
			t.Errorf("Anchor %q: expected %+v, got %+v", tc.anchor, tc.want, got)
		}
	}
}

func TestClampPosition(t *testing.T) {
	vp := testViewport()
	size := types.Size{Width: 600, Height: 400}

	cases := []struct {
		name string
		in   types.Position
		want types.Position
	}{
		{"inside", types.Position{X: 100, Y: 100}, types.Position{X: 100, Y: 100}},
		// Left: at least minVisibleWidth px of the right edge stay visible
		{"far left", types.Position{X: -2000, Y: 100}, types.Position{X: -(size.Width - minVisibleWidth), Y: 100}},
		{"left boundary", types.Position{X: -(size.Width - minVisibleWidth), Y: 100}, types.Position{X: -(size.Width - minVisibleWidth), Y: 100}},
		// Right: at least minVisibleWidth px of the left edge stay visible
		{"far right", types.Position{X: 5000, Y: 100}, types.Position{X: vp.Width - minVisibleWidth, Y: 100}},
		// Top edge never above the screen
		{"above screen", types.Position{X: 100, Y: -500}, types.Position{X: 100, Y: 0}},
		// Bottom: the title bar band stays above the taskbar
		{"below taskbar", types.Position{X: 100, Y: 5000}, types.Position{X: 100, Y: vp.Height - vp.TaskbarHeight - minVisibleHeight}},
	}

	for _, tc := range cases {
		if got := clampPosition(tc.in, size, vp); got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestClampDegenerateViewport(t *testing.T) {
	// A viewport smaller than the visibility margins must not invert the
	// clamp range.
	vp := types.Viewport{Width: 40, Height: 30, TaskbarHeight: 20}
	size := types.Size{Width: 600, Height: 400}

	got := clampPosition(types.Position{X: 1000, Y: 1000}, size, vp)
	if got.X < -(size.Width - minVisibleWidth) {
		t.Errorf("Clamp range inverted on X: %+v", got)
	}
	if got.Y < 0 {
		t.Errorf("Clamp range inverted on Y: %+v", got)
	}
}
