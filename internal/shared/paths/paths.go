// Package paths provides the standardized on-disk layout for desktop
// storage so every component resolves the same directories.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Storage subdirectories
const (
	// Sessions holds saved workspace sessions, one file each
	Sessions = "sessions"
)

// SessionsDir resolves the sessions directory under a storage root
func SessionsDir(storageRoot string) string {
	return filepath.Join(storageRoot, Sessions)
}

// SessionFile resolves the file path for one session id. Ids reach this
// from API routes, so they get the same containment check as file names.
func SessionFile(storageRoot, id, ext string) (string, error) {
	return SafeChild(SessionsDir(storageRoot), id+ext)
}

// SafeChild joins a client-supplied file name onto a directory, rejecting
// anything that could escape it. Names must be plain file names: no
// separators, no parent references, not hidden.
func SafeChild(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(dir, name), nil
}
