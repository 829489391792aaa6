// Package frames implements the inbound side of the cross-frame message
// protocol between embedded application content and the window manager.
//
// Messages are a tagged union dispatched through a handler table keyed by
// message type. Each message is first attributed to a window by resolving
// its source frame id; unattributable messages are silently dropped.
// Status-bar text from content frames is sanitized before it reaches the
// model.
package frames
