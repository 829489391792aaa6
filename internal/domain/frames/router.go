package frames

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/shared/types"
)

// Actions is the window manager surface the router drives. Inbound
// requests may minimize or close the owning window, or mutate that
// window's own chrome; nothing here touches global state.
type Actions interface {
	WindowForFrame(frameID string) (string, bool)
	Minimize(id string) bool
	Close(id string) bool
	SetStatusText(id, text string) bool
	SetHomeEnabled(id string, enabled bool) bool
	SetLightboxState(id string, open bool, linkType, linkURL string) bool
	SetDescriptionState(id string, open bool) bool
	CloseDropdowns(id string) bool
}

type handlerFunc func(windowID string, msg types.FrameMessage)

// Router dispatches inbound cross-frame messages to window manager
// actions. Attribution is a pure frame-id lookup; messages that cannot be
// resolved to a known window are silently ignored, since unrelated frames
// may emit unrelated messages. All handlers are idempotent against stale
// or duplicate messages and the router never panics on malformed input.
type Router struct {
	actions   Actions
	logger    *zap.Logger
	sanitizer *bluemonday.Policy
	handlers  map[types.FrameMessageType]handlerFunc
}

// NewRouter creates a router over the given window manager actions
func NewRouter(actions Actions, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Router{
		actions:   actions,
		logger:    logger,
		sanitizer: bluemonday.StrictPolicy(),
	}

	r.handlers = map[types.FrameMessageType]handlerFunc{
		types.MsgMinimizeWindow: func(id string, _ types.FrameMessage) {
			actions.Minimize(id)
		},
		types.MsgCloseWindow: func(id string, _ types.FrameMessage) {
			actions.Close(id)
		},
		types.MsgUpdateStatusBar: func(id string, msg types.FrameMessage) {
			// Content frames are untrusted; strip markup before storing
			text := strings.TrimSpace(r.sanitizer.Sanitize(msg.Text))
			actions.SetStatusText(id, text)
		},
		types.MsgSetHomeEnabled: func(id string, msg types.FrameMessage) {
			actions.SetHomeEnabled(id, msg.Enabled)
		},
		types.MsgLightboxState: func(id string, msg types.FrameMessage) {
			actions.SetLightboxState(id, msg.Open, msg.LinkType, msg.LinkURL)
		},
		types.MsgDescriptionState: func(id string, msg types.FrameMessage) {
			actions.SetDescriptionState(id, msg.Open)
		},
		types.MsgFrameInteraction: func(id string, _ types.FrameMessage) {
			actions.CloseDropdowns(id)
		},
	}

	return r
}

// Handle decodes a raw inbound message and dispatches it. Malformed
// payloads, unknown frames, and unknown message types are all no-ops.
func (r *Router) Handle(frameID string, raw []byte) {
	var msg types.FrameMessage
	if err := sonic.ConfigStd.Unmarshal(raw, &msg); err != nil {
		r.logger.Debug("Discarding malformed frame message",
			zap.String("frame", frameID),
			zap.Error(err),
		)
		return
	}
	r.HandleMessage(frameID, msg)
}

// HandleMessage dispatches an already-decoded inbound message
func (r *Router) HandleMessage(frameID string, msg types.FrameMessage) {
	windowID, ok := r.actions.WindowForFrame(frameID)
	if !ok {
		return
	}

	handler, ok := r.handlers[msg.Type]
	if !ok {
		r.logger.Debug("Ignoring unknown frame message type",
			zap.String("frame", frameID),
			zap.String("type", string(msg.Type)),
		)
		return
	}
	handler(windowID, msg)
}
