package types

import "time"

// WindowState represents window lifecycle states
type WindowState string

const (
	StateNormal    WindowState = "normal"
	StateMinimized WindowState = "minimized"
	StateMaximized WindowState = "maximized"
)

// Position represents a window's top-left corner on the desktop
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size represents window dimensions
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Geometry is a full position+size snapshot
type Geometry struct {
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}

// Offset is a transient translation applied during a drag, before the
// final position is committed
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Viewport describes the available desktop area. TaskbarHeight is the band
// reserved at the bottom that windows may never be committed into. Mobile
// forces maximized presentation for every window.
type Viewport struct {
	Width         int  `json:"width"`
	Height        int  `json:"height"`
	TaskbarHeight int  `json:"taskbar_height"`
	Mobile        bool `json:"mobile"`
}

// Window represents one open application instance
type Window struct {
	ID         string      `json:"id"`
	ProgramKey string      `json:"program_key"`
	Title      string      `json:"title"`
	Icon       string      `json:"icon"`
	Geometry   Geometry    `json:"geometry"`
	// RestoreGeometry is the snapshot reapplied on unmaximize. Drag commits
	// rewrite it so a later unmaximize lands where the user left the window.
	RestoreGeometry Geometry    `json:"restore_geometry"`
	MinSize         Size        `json:"min_size"`
	State           WindowState `json:"state"`
	// RestoreMaximized records that the window was maximized when it was
	// minimized, so restoring brings it back maximized.
	RestoreMaximized bool `json:"restore_maximized,omitempty"`
	// MobileMaximized marks a maximize forced by the mobile viewport rather
	// than chosen by the user. It is undone when the viewport leaves mobile.
	MobileMaximized bool      `json:"mobile_maximized,omitempty"`
	Focused         bool      `json:"focused"`
	ZIndex          int       `json:"z_index"`
	Dragging        bool      `json:"dragging"`
	DragOffset      Offset    `json:"drag_offset"`
	CanMinimize     bool      `json:"can_minimize"`
	CanMaximize     bool      `json:"can_maximize"`
	Chrome          *Chrome   `json:"chrome,omitempty"`
	FrameID         string    `json:"frame_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TaskbarItem is the persistent UI handle for an open window. It lives
// exactly as long as its window and survives minimize.
type TaskbarItem struct {
	WindowID string `json:"window_id"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	Active   bool   `json:"active"`
}

// Stats contains window manager statistics
type Stats struct {
	TotalWindows     int     `json:"total_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	MaximizedWindows int     `json:"maximized_windows"`
	FocusedWindowID  *string `json:"focused_window_id,omitempty"`
}
