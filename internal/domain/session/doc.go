// Package session implements workspace persistence.
//
// A session captures every open window (program key, geometry, state),
// the z-order stack, and the focused window. Sessions are written one per
// file as gzip-compressed JSON and restored by replaying the saved
// windows through the regular window manager operations, so every
// observer sees a restore as ordinary opens and focus changes.
package session
