package registry

import "github.com/xpdesk/backend/internal/shared/types"

func boolPtr(b bool) *bool { return &b }

// SeedDefaults installs the built-in portfolio programs. Files loaded by
// SeedPrograms afterwards override these key by key.
func (s *Seeder) SeedDefaults() error {
	defaults := defaultPrograms()
	for _, cfg := range defaults {
		if err := s.manager.Register(cfg); err != nil {
			return err
		}
	}
	s.logger.Info("Seeded built-in programs")
	return nil
}

func defaultPrograms() []*types.ProgramConfig {
	return []*types.ProgramConfig{
		{
			ID:            "about",
			Title:         "About Me",
			Icon:          "about.png",
			Dimensions:    types.Size{Width: 660, Height: 500},
			MinDimensions: types.Size{Width: 420, Height: 320},
			ContentRef:    "/apps/about/index.html",
			MenuBar: []types.MenuConfig{
				{
					ID:    "file",
					Label: "File",
					Items: []types.MenuItemConfig{
						{ID: "close", Label: "Close", Action: "close-window"},
					},
				},
				{
					ID:    "help",
					Label: "Help",
					Items: []types.MenuItemConfig{
						{ID: "about", Label: "About", Action: "show-description"},
					},
				},
			},
			Toolbar: []types.ToolbarButtonConfig{
				{ID: "back", Label: "Back", Icon: "back.png", Action: "navigate-back", Enabled: false},
				{ID: "home", Label: "Home", Icon: "home.png", Action: "navigate-home", Enabled: false},
			},
			AddressBar: &types.AddressBarConfig{
				Label:   "Address",
				Address: "C:\\Portfolio\\About Me",
				GoLabel: "Go",
			},
		},
		{
			ID:            "contact",
			Title:         "Contact",
			Icon:          "contact.png",
			Dimensions:    types.Size{Width: 560, Height: 460},
			MinDimensions: types.Size{Width: 400, Height: 340},
			ContentRef:    "/apps/contact/index.html",
			MenuBar: []types.MenuConfig{
				{
					ID:    "file",
					Label: "File",
					Items: []types.MenuItemConfig{
						{ID: "send", Label: "Send Message", Action: "submit-form"},
						{ID: "sep1", Separator: true},
						{ID: "close", Label: "Close", Action: "close-window"},
					},
				},
			},
		},
		{
			ID:            "resume",
			Title:         "Resume",
			Icon:          "resume.png",
			Dimensions:    types.Size{Width: 720, Height: 580},
			MinDimensions: types.Size{Width: 480, Height: 360},
			ContentRef:    "/apps/resume/index.html",
			Toolbar: []types.ToolbarButtonConfig{
				{ID: "download", Label: "Download", Icon: "save.png", Action: "download-pdf", Enabled: true},
				{ID: "print", Label: "Print", Icon: "print.png", Action: "print", Enabled: true},
			},
			AddressBar: &types.AddressBarConfig{
				Label:   "Address",
				Address: "C:\\Portfolio\\Resume.pdf",
				GoLabel: "Go",
			},
		},
		{
			ID:            "projects",
			Title:         "My Projects",
			Icon:          "projects.png",
			Dimensions:    types.Size{Width: 760, Height: 560},
			MinDimensions: types.Size{Width: 500, Height: 380},
			ContentRef:    "/apps/projects/index.html",
			MenuBar: []types.MenuConfig{
				{
					ID:    "view",
					Label: "View",
					Items: []types.MenuItemConfig{
						{ID: "grid", Label: "Grid", Action: "view-grid"},
						{ID: "list", Label: "List", Action: "view-list"},
					},
				},
			},
			Toolbar: []types.ToolbarButtonConfig{
				{ID: "back", Label: "Back", Icon: "back.png", Action: "navigate-back", Enabled: false},
				{ID: "home", Label: "Home", Icon: "home.png", Action: "navigate-home", Enabled: false},
			},
			AddressBar: &types.AddressBarConfig{
				Label:   "Address",
				Address: "C:\\Portfolio\\Projects",
				GoLabel: "Go",
			},
		},
		{
			ID:            "music",
			Title:         "Music Player",
			Icon:          "music.png",
			Dimensions:    types.Size{Width: 340, Height: 220},
			MinDimensions: types.Size{Width: 300, Height: 180},
			ContentRef:    "/apps/music/index.html",
			CanMaximize:   boolPtr(false),
			Position: &types.PositionHint{
				Type:   types.PositionCustom,
				Anchor: types.AnchorBottomRight,
				X:      24,
				Y:      16,
			},
		},
	}
}
