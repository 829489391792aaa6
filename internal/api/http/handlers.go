package http

import (
	"net/http"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/xpdesk/backend/internal/domain/registry"
	"github.com/xpdesk/backend/internal/domain/session"
	"github.com/xpdesk/backend/internal/domain/window"
	"github.com/xpdesk/backend/internal/shared/paths"
	"github.com/xpdesk/backend/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	windows  *window.Manager
	programs *registry.Manager
	sessions *session.Manager
	iconsDir string
}

// NewHandlers creates a new handler set
func NewHandlers(
	windows *window.Manager,
	programs *registry.Manager,
	sessions *session.Manager,
	iconsDir string,
) *Handlers {
	return &Handlers{
		windows:  windows,
		programs: programs,
		sessions: sessions,
		iconsDir: iconsDir,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Desktop Service (Go)",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"windows":  h.windows.Stats(),
		"programs": h.programs.Stats(),
		"sessions": h.sessions.Stats(),
	})
}

// ListWindows lists all open windows in stack order
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows":     h.windows.List(),
		"stack_order": h.windows.StackOrder(),
		"taskbar":     h.windows.TaskbarItems(),
		"stats":       h.windows.Stats(),
	})
}

// GetWindow returns one window by id
func (h *Handlers) GetWindow(c *gin.Context) {
	id := c.Param("id")

	win, ok := h.windows.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": win})
}

// OpenProgram opens (or refocuses) the window for a program key
func (h *Handlers) OpenProgram(c *gin.Context) {
	key := c.Param("key")

	win, ok := h.windows.OpenProgram(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown program"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"window":  win,
	})
}

// FocusWindow brings a window to the front
func (h *Handlers) FocusWindow(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"success":   h.windows.BringToFront(id),
		"window_id": id,
	})
}

// MinimizeWindow hides a window to the taskbar
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"success":   h.windows.Minimize(id),
		"window_id": id,
	})
}

// RestoreWindow brings a minimized window back
func (h *Handlers) RestoreWindow(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"success":   h.windows.Restore(id),
		"window_id": id,
	})
}

// ToggleMaximize switches a window between maximized and normal
func (h *Handlers) ToggleMaximize(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"success":   h.windows.ToggleMaximize(id),
		"window_id": id,
	})
}

// CloseWindow closes and destroys a window
func (h *Handlers) CloseWindow(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"success":   h.windows.Close(id),
		"window_id": id,
	})
}

// ListPrograms lists all registered programs
func (h *Handlers) ListPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"programs": h.programs.List(),
		"stats":    h.programs.Stats(),
	})
}

// GetProgram returns one program configuration
func (h *Handlers) GetProgram(c *gin.Context) {
	key := c.Param("key")

	cfg, ok := h.programs.Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown program"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": cfg})
}

// SaveSession persists the current workspace
func (h *Handlers) SaveSession(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.sessions.Save(req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": saved.ToMetadata(),
	})
}

// SaveDefaultSession persists the workspace under the default name
func (h *Handlers) SaveDefaultSession(c *gin.Context) {
	saved, err := h.sessions.SaveDefault()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": saved.ToMetadata(),
	})
}

// ListSessions lists all saved sessions
func (h *Handlers) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"stats":    h.sessions.Stats(),
	})
}

// GetSession returns one saved session in full
func (h *Handlers) GetSession(c *gin.Context) {
	id := c.Param("id")

	loaded, err := h.sessions.Load(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": loaded})
}

// RestoreSession replaces the workspace with a saved session
func (h *Handlers) RestoreSession(c *gin.Context) {
	id := c.Param("id")

	if err := h.sessions.Restore(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"session_id": id,
	})
}

// DeleteSession removes a saved session
func (h *Handlers) DeleteSession(c *gin.Context) {
	id := c.Param("id")

	if err := h.sessions.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"session_id": id,
	})
}

// GetIcon serves one icon asset with a sniffed content type
func (h *Handlers) GetIcon(c *gin.Context) {
	// Icon names come from the client; reject anything but plain file names
	path, err := paths.SafeChild(h.iconsDir, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid icon name"})
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "icon not found"})
		return
	}

	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}

// Viewport reports the viewport the window manager is laying out against
func (h *Handlers) Viewport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"viewport": h.windows.Viewport()})
}

// SetViewport applies a viewport change
func (h *Handlers) SetViewport(c *gin.Context) {
	var v types.Viewport
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if v.Width <= 0 || v.Height <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "viewport dimensions must be positive"})
		return
	}

	h.windows.SetViewport(v)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"viewport": h.windows.Viewport(),
	})
}
