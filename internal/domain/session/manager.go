package session

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/infrastructure/monitoring"
	"github.com/xpdesk/backend/internal/shared/paths"
	"github.com/xpdesk/backend/internal/shared/types"
)

const fileExt = ".session"

// Desktop is the window manager surface session persistence needs
type Desktop interface {
	List() []*types.Window
	StackOrder() []string
	FocusedID() (string, bool)
	OpenProgram(key string) (*types.Window, bool)
	Close(id string) bool
	BringToFront(id string) bool
	DeactivateAll()
	ApplySnapshot(id string, snap types.WindowSnapshot) bool
}

// Manager handles workspace session persistence. Sessions are stored one
// per file, gzip-compressed JSON, under <storagePath>/sessions/.
type Manager struct {
	sessions     sync.Map
	desktop      Desktop
	storagePath  string
	logger       *zap.Logger
	metrics      *monitoring.Metrics
	mu           sync.RWMutex
	lastSaved    *time.Time
	lastRestored *time.Time
}

// NewManager creates a session manager storing sessions under storagePath
func NewManager(desktop Desktop, storagePath string) *Manager {
	return &Manager{
		desktop:     desktop,
		storagePath: storagePath,
		logger:      zap.NewNop(),
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

// Save captures the current workspace and writes it to disk
func (m *Manager) Save(name, description string) (*types.Session, error) {
	workspace := m.captureWorkspace()

	now := time.Now()
	session := &types.Session{
		ID:          fmt.Sprintf("session-%s", now.Format("20060102-150405")),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Workspace:   *workspace,
	}

	if err := m.writeSession(session); err != nil {
		return nil, err
	}

	m.sessions.Store(session.ID, session)

	m.mu.Lock()
	m.lastSaved = &now
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.RecordSessionSave()
	}

	m.logger.Info("Session saved",
		zap.String("session", session.ID),
		zap.Int("windows", len(workspace.Windows)),
	)
	return session, nil
}

// SaveDefault saves the workspace under a default name
func (m *Manager) SaveDefault() (*types.Session, error) {
	return m.Save("default", "Auto-saved session")
}

// Load reads a session from cache or disk
func (m *Manager) Load(id string) (*types.Session, error) {
	if cached, ok := m.sessions.Load(id); ok {
		return cached.(*types.Session), nil
	}

	path, err := m.sessionPath(id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	data, err := m.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session types.Session
	if err := sonic.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	if session.ID == "" {
		return nil, fmt.Errorf("session %s has empty ID field", id)
	}

	m.sessions.Store(id, &session)
	return &session, nil
}

// Restore applies a saved session to the desktop: the current workspace is
// cleared, every saved window is reopened in stack order so stacking
// reproduces, and saved geometry, state, and focus are reapplied.
func (m *Manager) Restore(id string) error {
	session, err := m.Load(id)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	for _, win := range m.desktop.List() {
		m.desktop.Close(win.ID)
	}

	// Snapshots are ordered bottom-of-stack first, minimized last, so
	// opening in order rebuilds the z-order for free.
	for i := range session.Workspace.Windows {
		snap := &session.Workspace.Windows[i]
		win, ok := m.desktop.OpenProgram(snap.ProgramKey)
		if !ok {
			m.logger.Warn("Skipping window for unknown program",
				zap.String("session", id),
				zap.String("program", snap.ProgramKey),
			)
			continue
		}
		m.desktop.ApplySnapshot(win.ID, *snap)
	}

	if session.Workspace.FocusedWindowID != nil {
		m.desktop.BringToFront(*session.Workspace.FocusedWindowID)
	} else {
		m.desktop.DeactivateAll()
	}

	now := time.Now()
	m.mu.Lock()
	m.lastRestored = &now
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.RecordSessionRestore()
	}

	m.logger.Info("Session restored",
		zap.String("session", id),
		zap.Int("windows", len(session.Workspace.Windows)),
	)
	return nil
}

// List returns metadata for every saved session, scanning the storage
// directory so sessions written by earlier runs are included.
func (m *Manager) List() ([]types.SessionMetadata, error) {
	entries, err := os.ReadDir(m.sessionsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var metadata []types.SessionMetadata
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		id := strings.TrimSuffix(name, fileExt)
		session, err := m.Load(id)
		if err != nil {
			m.logger.Warn("Skipping unreadable session file",
				zap.String("file", name),
				zap.Error(err),
			)
			continue
		}
		metadata = append(metadata, session.ToMetadata())
	}
	return metadata, nil
}

// Delete removes a session from disk and cache. Deleting an unknown
// session is not an error.
func (m *Manager) Delete(id string) error {
	path, err := m.sessionPath(id)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	m.sessions.Delete(id)
	return nil
}

// Stats returns session manager statistics
func (m *Manager) Stats() types.SessionStats {
	var total int
	m.sessions.Range(func(_, _ interface{}) bool {
		total++
		return true
	})

	m.mu.RLock()
	lastSaved := m.lastSaved
	lastRestored := m.lastRestored
	m.mu.RUnlock()

	return types.SessionStats{
		TotalSessions: total,
		LastSaved:     lastSaved,
		LastRestored:  lastRestored,
	}
}

// captureWorkspace snapshots the current desktop state
func (m *Manager) captureWorkspace() *types.Workspace {
	windows := m.desktop.List()

	snapshots := make([]types.WindowSnapshot, len(windows))
	for i, win := range windows {
		snapshots[i] = types.WindowSnapshot{
			ProgramKey:      win.ProgramKey,
			Geometry:        win.Geometry,
			RestoreGeometry: win.RestoreGeometry,
			State:           win.State,
		}
	}

	workspace := &types.Workspace{
		Windows:    snapshots,
		StackOrder: m.desktop.StackOrder(),
	}
	if focused, ok := m.desktop.FocusedID(); ok {
		workspace.FocusedWindowID = &focused
	}
	return workspace
}

// writeSession marshals and writes one session file atomically
func (m *Manager) writeSession(session *types.Session) error {
	data, err := sonic.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	dir := m.sessionsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	path, err := m.sessionPath(session.ID)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}
	tmp := path + ".tmp"
	if err := m.writeFile(tmp, data); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (m *Manager) writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		gz.Close()
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (m *Manager) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	return io.ReadAll(gz)
}

func (m *Manager) sessionsDir() string {
	return paths.SessionsDir(m.storagePath)
}

// sessionPath generates the filesystem path for a session. Ids arrive
// from API routes, so anything that would escape the sessions directory
// is rejected.
func (m *Manager) sessionPath(id string) (string, error) {
	return paths.SessionFile(m.storagePath, id, fileExt)
}
