package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/xpdesk/backend/internal/shared/types"
)

// Manager holds the program registry: a static mapping from program key to
// window configuration. Entries are registered at startup (seeder plus
// built-in defaults) and read-only afterwards.
type Manager struct {
	mu          sync.RWMutex
	programs    map[string]*types.ProgramConfig
	seededFiles int
}

// NewManager creates an empty program registry
func NewManager() *Manager {
	return &Manager{
		programs: make(map[string]*types.ProgramConfig),
	}
}

// Register adds a program configuration. A later registration for the same
// key replaces the earlier one, so a file on disk can override a built-in.
func (m *Manager) Register(cfg *types.ProgramConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("program ID is required")
	}
	if cfg.Title == "" {
		return fmt.Errorf("program %q: title is required", cfg.ID)
	}
	if cfg.Dimensions.Width <= 0 || cfg.Dimensions.Height <= 0 {
		return fmt.Errorf("program %q: dimensions must be positive", cfg.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs[cfg.ID] = cfg
	return nil
}

// Get retrieves a program configuration by key. The returned value is a
// copy; callers cannot mutate the registry through it.
func (m *Manager) Get(key string) (*types.ProgramConfig, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg, ok := m.programs[key]
	if !ok {
		return nil, false
	}
	return cloneConfig(cfg), true
}

// List returns copies of all registered programs sorted by key
func (m *Manager) List() []*types.ProgramConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()

	programs := make([]*types.ProgramConfig, 0, len(m.programs))
	for _, cfg := range m.programs {
		programs = append(programs, cloneConfig(cfg))
	}
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].ID < programs[j].ID
	})
	return programs
}

// cloneConfig deep-copies a program configuration, including the nested
// menu item slices, so no registry-owned memory escapes.
func cloneConfig(cfg *types.ProgramConfig) *types.ProgramConfig {
	c := *cfg
	if cfg.MenuBar != nil {
		c.MenuBar = make([]types.MenuConfig, len(cfg.MenuBar))
		for i, mc := range cfg.MenuBar {
			mc.Items = append([]types.MenuItemConfig(nil), mc.Items...)
			c.MenuBar[i] = mc
		}
	}
	c.Toolbar = append([]types.ToolbarButtonConfig(nil), cfg.Toolbar...)
	if cfg.AddressBar != nil {
		bar := *cfg.AddressBar
		c.AddressBar = &bar
	}
	if cfg.Position != nil {
		pos := *cfg.Position
		c.Position = &pos
	}
	if cfg.CanMinimize != nil {
		b := *cfg.CanMinimize
		c.CanMinimize = &b
	}
	if cfg.CanMaximize != nil {
		b := *cfg.CanMaximize
		c.CanMaximize = &b
	}
	return &c
}

// Stats returns registry statistics
func (m *Manager) Stats() types.RegistryStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return types.RegistryStats{
		TotalPrograms: len(m.programs),
		SeededFiles:   m.seededFiles,
	}
}
