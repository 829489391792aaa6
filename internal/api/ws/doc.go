// Package ws streams desktop state to connected shells over WebSocket.
//
// Each connection receives every bus event plus frame protocol envelopes,
// and accepts control messages (program opens, window operations, drag
// gestures, viewport changes, frame bindings) that drive the window
// manager. The handler implements window.FrameNotifier so outbound frame
// messages ride the same connections.
package ws
