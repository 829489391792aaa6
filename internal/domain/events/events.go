package events

// Type names one event in the fixed desktop vocabulary
type Type string

const (
	ProgramOpen       Type = "program:open"
	WindowCreated     Type = "window:created"
	WindowClosed      Type = "window:closed"
	WindowFocused     Type = "window:focused"
	WindowMinimized   Type = "window:minimized"
	WindowRestored    Type = "window:restored"
	WindowMaximized   Type = "window:maximized"
	WindowUnmaximized Type = "window:unmaximized"
	TaskbarItemClick  Type = "taskbar:item:clicked"
	StartMenuOpened   Type = "startmenu:opened"
	StartMenuClosed   Type = "startmenu:closed"
)

// Payload carries event data. Only the fields relevant to the event type
// are populated.
type Payload struct {
	WindowID    string `json:"windowId,omitempty"`
	ProgramName string `json:"programName,omitempty"`
	Title       string `json:"title,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Event is one published occurrence
type Event struct {
	Type    Type    `json:"type"`
	Payload Payload `json:"payload"`
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine; they must not block.
type Handler func(Event)
