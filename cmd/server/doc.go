// Package main is the entry point for the desktop backend server.
//
// This application runs the window manager behind the browser desktop
// shell: the program registry, window stacking and focus model, taskbar,
// cross-frame message protocol, and workspace persistence.
//
// Architecture:
//
//	Shell (browser) → Go Backend (window manager, registry, sessions)
//	Content frames  → frame protocol → window manager
//
// The server provides:
//   - REST API for window and program management
//   - WebSocket streaming of desktop events
//   - Program registry seeded from definition files
//   - Session persistence
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional desktop settings TOML overlay
//   - CLI flags for port and dev mode
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown (saves the default session)
package main
