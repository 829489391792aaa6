// Package http provides the REST surface of the desktop: window
// operations, the program registry, session persistence, viewport
// control, and icon assets.
package http
