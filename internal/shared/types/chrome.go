package types

// Menu is a built dropdown menu on a window's menu bar
type Menu struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Items []MenuItemConfig `json:"items"`
}

// ToolbarButton is a built toolbar button with live enablement state
type ToolbarButton struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Icon    string `json:"icon,omitempty"`
	Action  string `json:"action,omitempty"`
	Enabled bool   `json:"enabled"`
}

// AddressBar is a window's built address bar
type AddressBar struct {
	Label   string `json:"label"`
	Address string `json:"address"`
	GoLabel string `json:"go_label"`
}

// Chrome is the UI state surrounding a window's content area: menu bar,
// toolbar, address bar, status text, and the transient per-window flags
// the embedded content is allowed to drive. It never holds global state.
type Chrome struct {
	MenuBar    []Menu          `json:"menu_bar,omitempty"`
	Toolbar    []ToolbarButton `json:"toolbar,omitempty"`
	AddressBar *AddressBar     `json:"address_bar,omitempty"`
	ContentRef string          `json:"content_ref"`

	StatusText      string `json:"status_text,omitempty"`
	HomeEnabled     bool   `json:"home_enabled"`
	LightboxOpen    bool   `json:"lightbox_open"`
	LinkType        string `json:"link_type,omitempty"`
	LinkURL         string `json:"link_url,omitempty"`
	DescriptionOpen bool   `json:"description_open"`
	// OpenDropdown holds the id of the currently expanded menu, if any.
	// At most one dropdown is open per window.
	OpenDropdown string `json:"open_dropdown,omitempty"`
}
