// Package types provides shared data structures for the desktop backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Window: Open application instance (geometry, state, chrome, taskbar link)
//   - ProgramConfig: Immutable program registry entry
//   - Chrome: Menu bar / toolbar / address bar state built around a window
//   - TaskbarItem: Persistent taskbar handle for an open window
//   - Session: Saved workspace snapshot
//
// Protocol Types:
//   - FrameMessage: Tagged-union cross-frame message (embedded content <-> manager)
//
// State Management:
//   - WindowState: Window state enum (normal, minimized, maximized)
//   - Geometry, Position, Size, Viewport: Desktop geometry
//   - Stats: Window manager statistics
//
// Example Usage:
//
//	win := &types.Window{
//	    ID:         "about-window",
//	    ProgramKey: "about",
//	    Title:      "About Me",
//	    State:      types.StateNormal,
//	}
package types
