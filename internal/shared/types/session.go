package types

import "time"

// WindowSnapshot captures one window for session persistence
type WindowSnapshot struct {
	ProgramKey      string      `json:"program_key"`
	Geometry        Geometry    `json:"geometry"`
	RestoreGeometry Geometry    `json:"restore_geometry"`
	State           WindowState `json:"state"`
}

// Workspace captures the full desktop state at save time
type Workspace struct {
	Windows         []WindowSnapshot `json:"windows"`
	StackOrder      []string         `json:"stack_order"`
	FocusedWindowID *string          `json:"focused_window_id,omitempty"`
}

// Session is a saved workspace snapshot
type Session struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Workspace   Workspace `json:"workspace"`
}

// SessionMetadata contains summary information about a session
type SessionMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	WindowCount int       `json:"window_count"`
}

// SessionStats contains session manager statistics
type SessionStats struct {
	TotalSessions int        `json:"total_sessions"`
	LastSaved     *time.Time `json:"last_saved,omitempty"`
	LastRestored  *time.Time `json:"last_restored,omitempty"`
}

// ToMetadata extracts metadata from a session
func (s *Session) ToMetadata() SessionMetadata {
	return SessionMetadata{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		WindowCount: len(s.Workspace.Windows),
	}
}
