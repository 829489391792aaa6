package types

// PositionType selects the initial placement strategy for a program's window
type PositionType string

const (
	PositionCascade PositionType = "cascade"
	PositionCustom  PositionType = "custom"
)

// AnchorEdge pins a custom-positioned window to a screen edge
type AnchorEdge string

const (
	AnchorNone        AnchorEdge = ""
	AnchorTopLeft     AnchorEdge = "top-left"
	AnchorTopRight    AnchorEdge = "top-right"
	AnchorBottomLeft  AnchorEdge = "bottom-left"
	AnchorBottomRight AnchorEdge = "bottom-right"
)

// PositionHint carries a program's placement preference. Cascade windows
// ignore the coordinate fields; custom windows use X/Y as offsets from the
// anchor edge (or absolute coordinates when unanchored).
type PositionHint struct {
	Type   PositionType `json:"type" yaml:"type"`
	Anchor AnchorEdge   `json:"anchor,omitempty" yaml:"anchor"`
	X      int          `json:"x,omitempty" yaml:"x"`
	Y      int          `json:"y,omitempty" yaml:"y"`
}

// MenuItemConfig is one entry inside a dropdown menu
type MenuItemConfig struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	Action    string `json:"action,omitempty" yaml:"action"`
	Separator bool   `json:"separator,omitempty" yaml:"separator"`
}

// MenuConfig is one top-level dropdown (File, Edit, ...)
type MenuConfig struct {
	ID    string           `json:"id" yaml:"id"`
	Label string           `json:"label" yaml:"label"`
	Items []MenuItemConfig `json:"items" yaml:"items"`
}

// ToolbarButtonConfig is one toolbar button
type ToolbarButtonConfig struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Icon    string `json:"icon,omitempty" yaml:"icon"`
	Action  string `json:"action,omitempty" yaml:"action"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// AddressBarConfig describes a window's address bar
type AddressBarConfig struct {
	Label   string `json:"label,omitempty" yaml:"label"`
	Address string `json:"address" yaml:"address"`
	GoLabel string `json:"go_label,omitempty" yaml:"go_label"`
}

// ProgramConfig identifies a program and how its window is built.
// Loaded once at startup; immutable afterwards.
type ProgramConfig struct {
	ID             string                `json:"id" yaml:"id"`
	Title          string                `json:"title" yaml:"title"`
	Icon           string                `json:"icon" yaml:"icon"`
	Dimensions     Size                  `json:"dimensions" yaml:"dimensions"`
	MinDimensions  Size                  `json:"min_dimensions" yaml:"min_dimensions"`
	ContentRef     string                `json:"content_ref" yaml:"content_ref"`
	MenuBar        []MenuConfig          `json:"menu_bar,omitempty" yaml:"menu_bar"`
	Toolbar        []ToolbarButtonConfig `json:"toolbar,omitempty" yaml:"toolbar"`
	AddressBar     *AddressBarConfig     `json:"address_bar,omitempty" yaml:"address_bar"`
	Position       *PositionHint         `json:"position,omitempty" yaml:"position"`
	StartMinimized bool                  `json:"start_minimized,omitempty" yaml:"start_minimized"`
	CanMinimize    *bool                 `json:"can_minimize,omitempty" yaml:"can_minimize"`
	CanMaximize    *bool                 `json:"can_maximize,omitempty" yaml:"can_maximize"`
}

// RegistryStats contains program registry statistics
type RegistryStats struct {
	TotalPrograms int `json:"total_programs"`
	SeededFiles   int `json:"seeded_files"`
}
