package types

// FrameMessageType discriminates cross-frame protocol messages
type FrameMessageType string

// Inbound message types (embedded content -> window manager)
const (
	MsgMinimizeWindow   FrameMessageType = "minimize-window"
	MsgCloseWindow      FrameMessageType = "close-window"
	MsgUpdateStatusBar  FrameMessageType = "updateStatusBar"
	MsgSetHomeEnabled   FrameMessageType = "set-home-enabled"
	MsgLightboxState    FrameMessageType = "lightbox-state"
	MsgDescriptionState FrameMessageType = "description-state"
	MsgFrameInteraction FrameMessageType = "iframe-interaction"
)

// Outbound message types (window manager -> embedded content)
const (
	MsgWindowMaximized   FrameMessageType = "window:maximized"
	MsgWindowUnmaximized FrameMessageType = "window:unmaximized"
)

// FrameMessage is the tagged union carried across the frame boundary.
// Only the fields relevant to Type are populated; everything else is
// ignored by the receiver.
type FrameMessage struct {
	Type     FrameMessageType `json:"type"`
	Text     string           `json:"text,omitempty"`
	Enabled  bool             `json:"enabled,omitempty"`
	Open     bool             `json:"open,omitempty"`
	LinkType string           `json:"linkType,omitempty"`
	LinkURL  string           `json:"linkUrl,omitempty"`
	WindowID string           `json:"windowId,omitempty"`
}
