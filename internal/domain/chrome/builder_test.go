package chrome

import (
	"testing"

	"github.com/xpdesk/backend/internal/shared/types"
)

func validConfig() *types.ProgramConfig {
	return &types.ProgramConfig{
		ID:         "about",
		Title:      "About Me",
		Dimensions: types.Size{Width: 640, Height: 480},
		ContentRef: "/apps/about/index.html",
		MenuBar: []types.MenuConfig{
			{
				ID:    "file",
				Label: "File",
				Items: []types.MenuItemConfig{
					{ID: "close", Label: "Close", Action: "close-window"},
					{ID: "sep", Separator: true},
					{ID: "exit", Label: "Exit", Action: "close-window"},
				},
			},
		},
		Toolbar: []types.ToolbarButtonConfig{
			{ID: "home", Label: "Home", Action: "navigate-home", Enabled: false},
		},
		AddressBar: &types.AddressBarConfig{Address: "C:\\Portfolio\\About Me"},
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder()

	c, err := b.Build(validConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(c.MenuBar) != 1 || c.MenuBar[0].ID != "file" {
		t.Error("Expected file menu")
	}
	if len(c.Toolbar) != 1 || c.Toolbar[0].Enabled {
		t.Error("Expected disabled home button")
	}
	if c.AddressBar == nil {
		t.Fatal("Expected address bar")
	}
	if c.AddressBar.Label != "Address" || c.AddressBar.GoLabel != "Go" {
		t.Error("Expected address bar label defaults")
	}
	if c.ContentRef != "/apps/about/index.html" {
		t.Errorf("Unexpected content ref %q", c.ContentRef)
	}
}

func TestBuildMissingContentRef(t *testing.T) {
	b := NewBuilder()
	cfg := validConfig()
	cfg.ContentRef = ""

	if _, err := b.Build(cfg); err == nil {
		t.Error("Expected error for missing content_ref")
	}
}

func TestBuildEmptyMenu(t *testing.T) {
	b := NewBuilder()
	cfg := validConfig()
	cfg.MenuBar = []types.MenuConfig{{ID: "file", Label: "File"}}

	if _, err := b.Build(cfg); err == nil {
		t.Error("Expected error for menu with no items")
	}
}

func TestBuildDuplicateMenuID(t *testing.T) {
	b := NewBuilder()
	cfg := validConfig()
	cfg.MenuBar = append(cfg.MenuBar, types.MenuConfig{
		ID:    "file",
		Label: "File Again",
		Items: []types.MenuItemConfig{{ID: "open", Label: "Open", Action: "open"}},
	})

	if _, err := b.Build(cfg); err == nil {
		t.Error("Expected error for duplicate menu id")
	}
}

func TestBuildMenuItemWithoutLabel(t *testing.T) {
	b := NewBuilder()
	cfg := validConfig()
	cfg.MenuBar = []types.MenuConfig{
		{ID: "file", Label: "File", Items: []types.MenuItemConfig{{ID: "x"}}},
	}

	if _, err := b.Build(cfg); err == nil {
		t.Error("Expected error for menu item without label")
	}
}

func TestBuildToolbarButtonValidation(t *testing.T) {
	b := NewBuilder()
	cfg := validConfig()
	cfg.Toolbar = []types.ToolbarButtonConfig{{ID: "home"}}

	if _, err := b.Build(cfg); err == nil {
		t.Error("Expected error for toolbar button without label")
	}
}

func TestBuildAddressBarValidation(t *testing.T) {
	b := NewBuilder()
	cfg := validConfig()
	cfg.AddressBar = &types.AddressBarConfig{Label: "Address"}

	if _, err := b.Build(cfg); err == nil {
		t.Error("Expected error for address bar without address")
	}
}

func TestBuildNoChrome(t *testing.T) {
	b := NewBuilder()
	cfg := &types.ProgramConfig{
		ID:         "music",
		Title:      "Music Player",
		Dimensions: types.Size{Width: 340, Height: 220},
		ContentRef: "/apps/music/index.html",
	}

	c, err := b.Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(c.MenuBar) != 0 || len(c.Toolbar) != 0 || c.AddressBar != nil {
		t.Error("Chrome descriptors are optional")
	}
}
