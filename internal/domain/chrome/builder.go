package chrome

import (
	"fmt"

	"github.com/xpdesk/backend/internal/shared/types"
)

// Builder constructs a window's chrome (menu bar, toolbar, address bar)
// from its program configuration. The builder is stateless; per-window
// chrome state lives on the returned Chrome record.
type Builder struct{}

// NewBuilder creates a chrome builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build validates the chrome descriptors in cfg and assembles the chrome
// record. Any validation error aborts window creation; the caller must not
// register a partial window.
func (b *Builder) Build(cfg *types.ProgramConfig) (*types.Chrome, error) {
	if cfg.ContentRef == "" {
		return nil, fmt.Errorf("program %q: content_ref is required", cfg.ID)
	}

	c := &types.Chrome{
		ContentRef:  cfg.ContentRef,
		HomeEnabled: false,
	}

	// Menu ids must be unique: dropdown state is tracked by id
	menuIDs := make(map[string]bool, len(cfg.MenuBar))
	for _, mc := range cfg.MenuBar {
		menu, err := buildMenu(cfg.ID, mc)
		if err != nil {
			return nil, err
		}
		if menuIDs[menu.ID] {
			return nil, fmt.Errorf("program %q: duplicate menu id %q", cfg.ID, menu.ID)
		}
		menuIDs[menu.ID] = true
		c.MenuBar = append(c.MenuBar, menu)
	}

	for _, tc := range cfg.Toolbar {
		btn, err := buildToolbarButton(cfg.ID, tc)
		if err != nil {
			return nil, err
		}
		c.Toolbar = append(c.Toolbar, btn)
	}

	if cfg.AddressBar != nil {
		bar, err := buildAddressBar(cfg.ID, cfg.AddressBar)
		if err != nil {
			return nil, err
		}
		c.AddressBar = bar
	}

	return c, nil
}

func buildMenu(programID string, mc types.MenuConfig) (types.Menu, error) {
	if mc.ID == "" || mc.Label == "" {
		return types.Menu{}, fmt.Errorf("program %q: menu requires id and label", programID)
	}
	if len(mc.Items) == 0 {
		return types.Menu{}, fmt.Errorf("program %q: menu %q has no items", programID, mc.ID)
	}
	for _, item := range mc.Items {
		if item.Separator {
			continue
		}
		if item.ID == "" || item.Label == "" {
			return types.Menu{}, fmt.Errorf("program %q: menu %q has an item without id or label", programID, mc.ID)
		}
	}

	items := make([]types.MenuItemConfig, len(mc.Items))
	copy(items, mc.Items)
	return types.Menu{ID: mc.ID, Label: mc.Label, Items: items}, nil
}

func buildToolbarButton(programID string, tc types.ToolbarButtonConfig) (types.ToolbarButton, error) {
	if tc.ID == "" || tc.Label == "" {
		return types.ToolbarButton{}, fmt.Errorf("program %q: toolbar button requires id and label", programID)
	}
	return types.ToolbarButton{
		ID:      tc.ID,
		Label:   tc.Label,
		Icon:    tc.Icon,
		Action:  tc.Action,
		Enabled: tc.Enabled,
	}, nil
}

func buildAddressBar(programID string, ac *types.AddressBarConfig) (*types.AddressBar, error) {
	if ac.Address == "" {
		return nil, fmt.Errorf("program %q: address bar requires an address", programID)
	}
	bar := &types.AddressBar{
		Label:   ac.Label,
		Address: ac.Address,
		GoLabel: ac.GoLabel,
	}
	if bar.Label == "" {
		bar.Label = "Address"
	}
	if bar.GoLabel == "" {
		bar.GoLabel = "Go"
	}
	return bar, nil
}
