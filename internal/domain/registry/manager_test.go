package registry

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/shared/types"
)

func TestRegister(t *testing.T) {
	m := NewManager()

	err := m.Register(&types.ProgramConfig{
		ID:         "about",
		Title:      "About Me",
		Dimensions: types.Size{Width: 640, Height: 480},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := m.Get("about"); !ok {
		t.Error("Program should be registered")
	}
}

func TestRegisterValidation(t *testing.T) {
	m := NewManager()

	if err := m.Register(&types.ProgramConfig{Title: "No Key"}); err == nil {
		t.Error("Expected error for missing ID")
	}
	if err := m.Register(&types.ProgramConfig{ID: "x"}); err == nil {
		t.Error("Expected error for missing title")
	}
	if err := m.Register(&types.ProgramConfig{ID: "x", Title: "X"}); err == nil {
		t.Error("Expected error for zero dimensions")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Register(&types.ProgramConfig{
		ID:         "about",
		Title:      "About Me",
		Dimensions: types.Size{Width: 640, Height: 480},
		MenuBar: []types.MenuConfig{
			{ID: "file", Label: "File", Items: []types.MenuItemConfig{
				{ID: "close", Label: "Close", Action: "close-window"},
			}},
		},
		Toolbar: []types.ToolbarButtonConfig{
			{ID: "home", Label: "Home", Action: "navigate-home"},
		},
		AddressBar: &types.AddressBarConfig{Address: "C:\\Portfolio"},
	})

	first, _ := m.Get("about")
	first.Title = "Mutated"
	first.MenuBar[0].Items[0].Label = "Mutated"
	first.Toolbar[0].Enabled = true
	first.AddressBar.Address = "D:\\Elsewhere"

	second, _ := m.Get("about")
	if second.Title != "About Me" {
		t.Error("Get should return a copy, not the registry entry")
	}
	if second.MenuBar[0].Items[0].Label != "Close" {
		t.Error("Nested menu items must be copied too")
	}
	if second.Toolbar[0].Enabled {
		t.Error("Toolbar entries must be copied too")
	}
	if second.AddressBar.Address != "C:\\Portfolio" {
		t.Error("Address bar must be copied too")
	}
}

func TestUnknownKey(t *testing.T) {
	m := NewManager()
	if _, ok := m.Get("does-not-exist"); ok {
		t.Error("Unknown key should not resolve")
	}
}

func TestSeedDefaults(t *testing.T) {
	m := NewManager()
	s := NewSeeder(m, "", zap.NewNop())

	if err := s.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	for _, key := range []string{"about", "contact", "resume", "projects", "music"} {
		if _, ok := m.Get(key); !ok {
			t.Errorf("Expected default program %q", key)
		}
	}

	music, _ := m.Get("music")
	if music.Position == nil || music.Position.Type != types.PositionCustom {
		t.Error("Music player should use custom positioning")
	}
	if music.CanMaximize == nil || *music.CanMaximize {
		t.Error("Music player should not be maximizable")
	}
}

func TestSeedProgramsFromDir(t *testing.T) {
	dir := t.TempDir()

	jsonDef := `{
		"id": "notepad",
		"title": "Notepad",
		"icon": "notepad.png",
		"dimensions": {"width": 500, "height": 400}
	}`
	yamlDef := "id: paint\ntitle: Paint\ndimensions:\n  width: 600\n  height: 450\n"

	os.WriteFile(filepath.Join(dir, "notepad.json"), []byte(jsonDef), 0o644)
	os.Mkdir(filepath.Join(dir, "extra"), 0o755)
	os.WriteFile(filepath.Join(dir, "extra", "paint.yaml"), []byte(yamlDef), 0o644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644)
	os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("skip me"), 0o644)

	m := NewManager()
	s := NewSeeder(m, dir, zap.NewNop())

	if err := s.SeedPrograms(); err != nil {
		t.Fatalf("SeedPrograms failed: %v", err)
	}

	if _, ok := m.Get("notepad"); !ok {
		t.Error("Expected notepad from JSON file")
	}
	if _, ok := m.Get("paint"); !ok {
		t.Error("Expected paint from nested YAML file")
	}
	if _, ok := m.Get("broken"); ok {
		t.Error("Malformed file should be skipped")
	}

	stats := m.Stats()
	if stats.SeededFiles != 2 {
		t.Errorf("Expected 2 seeded files, got %d", stats.SeededFiles)
	}
}

func TestSeedProgramsMissingDir(t *testing.T) {
	m := NewManager()
	s := NewSeeder(m, "/does/not/exist", zap.NewNop())

	if err := s.SeedPrograms(); err != nil {
		t.Errorf("Missing dir should not be an error, got %v", err)
	}
}
