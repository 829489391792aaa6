// Package events provides the in-process publish/subscribe bus that
// decouples the window manager from the taskbar, start menu, and desktop
// surfaces.
//
// The vocabulary is fixed: program open, window created/closed/focused/
// minimized/restored/maximized/unmaximized, taskbar item clicks, and start
// menu open/close. Delivery is synchronous and ordered, which lets
// subscribers query manager state from inside a handler and observe a
// fully consistent model.
//
// Example Usage:
//
//	bus := events.NewBus()
//	off := bus.Subscribe(events.WindowCreated, func(e events.Event) {
//	    log.Println("created", e.Payload.WindowID)
//	})
//	defer off()
//	bus.Publish(events.Event{Type: events.WindowCreated})
package events
