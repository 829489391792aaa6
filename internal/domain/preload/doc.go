// Package preload warms remote program content ahead of first use.
//
// Programs whose content ref points at an http(s) URL get a best-effort
// GET with bounded retries at startup. Everything else is skipped, and no
// failure here is ever fatal.
package preload
