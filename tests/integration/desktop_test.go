//go:build integration
// +build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpdesk/backend/internal/domain/chrome"
	"github.com/xpdesk/backend/internal/domain/events"
	"github.com/xpdesk/backend/internal/domain/frames"
	"github.com/xpdesk/backend/internal/domain/registry"
	"github.com/xpdesk/backend/internal/domain/session"
	"github.com/xpdesk/backend/internal/domain/window"
	"github.com/xpdesk/backend/internal/shared/types"
	"github.com/xpdesk/backend/tests/helpers/testutil"
)

type desktop struct {
	bus      *events.Bus
	programs *registry.Manager
	windows  *window.Manager
	frames   *frames.Router
	sessions *session.Manager
}

func newDesktop(t *testing.T) *desktop {
	t.Helper()

	bus := events.NewBus()
	programs := registry.NewManager()
	seeder := registry.NewSeeder(programs, t.TempDir(), nil)
	require.NoError(t, seeder.SeedDefaults())

	windows := window.NewManager(programs, chrome.NewBuilder(), bus, testutil.TestViewport())
	windows.WireBus()

	return &desktop{
		bus:      bus,
		programs: programs,
		windows:  windows,
		frames:   frames.NewRouter(windows, nil),
		sessions: session.NewManager(windows, t.TempDir()),
	}
}

// TestDesktopSession walks a realistic user session: open a few programs,
// shuffle focus, minimize, drag, maximize, and close, checking the model
// after each step.
func TestDesktopSession(t *testing.T) {
	d := newDesktop(t)

	var log []events.Type
	d.bus.SubscribeAll(func(e events.Event) { log = append(log, e.Type) })

	// Open three programs
	about, ok := d.windows.OpenProgram("about")
	require.True(t, ok)
	_, ok = d.windows.OpenProgram("contact")
	require.True(t, ok)
	resume, ok := d.windows.OpenProgram("resume")
	require.True(t, ok)

	assert.Equal(t, "about-window", about.ID)
	assert.Len(t, d.windows.List(), 3)
	assert.Len(t, d.windows.TaskbarItems(), 3)

	focused, _ := d.windows.FocusedID()
	assert.Equal(t, resume.ID, focused, "last opened window holds focus")

	// Reopening an open program refocuses instead of duplicating
	again, ok := d.windows.OpenProgram("about")
	require.True(t, ok)
	assert.Equal(t, about.ID, again.ID)
	assert.Len(t, d.windows.List(), 3)
	focused, _ = d.windows.FocusedID()
	assert.Equal(t, about.ID, focused)

	// Minimize the focused window; focus falls to the next in the stack
	require.True(t, d.windows.Minimize(about.ID))
	focused, _ = d.windows.FocusedID()
	assert.Equal(t, resume.ID, focused)

	// Taskbar click on the minimized window restores and focuses it
	d.windows.HandleTaskbarClick(about.ID)
	win, _ := d.windows.Get(about.ID)
	assert.Equal(t, types.StateNormal, win.State)
	assert.True(t, win.Focused)

	// Drag, then maximize/unmaximize round-trips the dragged position
	require.True(t, d.windows.BeginDrag(about.ID))
	require.True(t, d.windows.EndDrag(about.ID, 120, 60))
	dragged, _ := d.windows.Get(about.ID)

	require.True(t, d.windows.ToggleMaximize(about.ID))
	require.True(t, d.windows.ToggleMaximize(about.ID))
	back, _ := d.windows.Get(about.ID)
	assert.Equal(t, dragged.Geometry, back.Geometry)

	// Close everything; no focus and no taskbar items remain
	for _, w := range d.windows.List() {
		assert.True(t, d.windows.Close(w.ID))
	}
	assert.Empty(t, d.windows.List())
	assert.Empty(t, d.windows.TaskbarItems())
	_, hasFocus := d.windows.FocusedID()
	assert.False(t, hasFocus)

	assert.Contains(t, log, events.WindowCreated)
	assert.Contains(t, log, events.WindowMinimized)
	assert.Contains(t, log, events.WindowRestored)
	assert.Contains(t, log, events.WindowClosed)
}

// TestFrameProtocolIntegration runs inbound frame messages through the
// router against a live window manager.
func TestFrameProtocolIntegration(t *testing.T) {
	d := newDesktop(t)

	win, ok := d.windows.OpenProgram("about")
	require.True(t, ok)

	// Status text arrives sanitized
	d.frames.Handle(win.FrameID, []byte(`{"type":"updateStatusBar","text":"<b>42 items</b>"}`))
	got, _ := d.windows.Get(win.ID)
	assert.Equal(t, "42 items", got.Chrome.StatusText)

	// A frame may minimize its own window
	d.frames.Handle(win.FrameID, []byte(`{"type":"minimize-window"}`))
	got, _ = d.windows.Get(win.ID)
	assert.Equal(t, types.StateMinimized, got.State)

	// Stale frame ids are silently dropped
	d.frames.Handle("stale-frame", []byte(`{"type":"close-window"}`))
	_, stillOpen := d.windows.Get(win.ID)
	assert.True(t, stillOpen)

	// A frame may close its own window; a duplicate close is harmless
	d.frames.Handle(win.FrameID, []byte(`{"type":"close-window"}`))
	d.frames.Handle(win.FrameID, []byte(`{"type":"close-window"}`))
	_, stillOpen = d.windows.Get(win.ID)
	assert.False(t, stillOpen)
}

// TestSessionRoundTrip saves a workspace, wrecks it, and restores it.
func TestSessionRoundTrip(t *testing.T) {
	d := newDesktop(t)

	_, ok := d.windows.OpenProgram("about")
	require.True(t, ok)
	_, ok = d.windows.OpenProgram("contact")
	require.True(t, ok)
	require.True(t, d.windows.BeginDrag("about-window"))
	require.True(t, d.windows.EndDrag("about-window", 200, 100))
	require.True(t, d.windows.BringToFront("about-window"))

	before, _ := d.windows.Get("about-window")

	saved, err := d.sessions.Save("snapshot", "integration")
	require.NoError(t, err)

	d.windows.Close("about-window")
	d.windows.OpenProgram("resume")

	require.NoError(t, d.sessions.Restore(saved.ID))

	names := map[string]bool{}
	for _, w := range d.windows.List() {
		names[w.ID] = true
	}
	assert.Equal(t, map[string]bool{"about-window": true, "contact-window": true}, names)

	after, _ := d.windows.Get("about-window")
	assert.Equal(t, before.Geometry, after.Geometry)
	focused, _ := d.windows.FocusedID()
	assert.Equal(t, "about-window", focused)
}

// TestBusOpenRequest opens a program purely through the event bus.
func TestBusOpenRequest(t *testing.T) {
	d := newDesktop(t)

	d.bus.Publish(events.Event{
		Type:    events.ProgramOpen,
		Payload: events.Payload{ProgramName: "about"},
	})

	_, ok := d.windows.Get("about-window")
	assert.True(t, ok)
}
