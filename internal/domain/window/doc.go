// Package window provides the window manager core for the desktop backend.
//
// The Manager owns all window state: the registry of open windows, the
// z-order stack, taskbar items, focus, and frame bindings. Nothing else
// writes to this state; external triggers arrive through published events
// or public methods, and every method leaves the model fully consistent
// before returning.
//
// Key invariants:
//   - At most one window exists per program key; OpenProgram enforces this
//     with a single guard, restoring or refocusing an existing instance.
//   - At most one window is focused, and a focused window is never
//     minimized.
//   - The z-order stack contains exactly the non-minimized window ids,
//     least-recently-focused first; the top entry is the focused window
//     whenever focus exists.
//   - Every stack mutation is followed by a full z-index recompute before
//     the method returns, so stack position and rendered z-index never
//     disagree.
//   - Taskbar active flags are recomputed in full (clear all, set one)
//     rather than toggled incrementally.
//
// Events are published synchronously after the state commit; the bus
// delivers them on the calling goroutine with the lock released, so a
// subscriber querying the manager sees the post-operation state.
//
// Example Usage:
//
//	mgr := window.NewManager(programs, chrome.NewBuilder(), bus, viewport)
//	win, ok := mgr.OpenProgram("about")
//	if ok {
//	    mgr.ToggleMaximize(win.ID)
//	}
package window
