package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/xpdesk/backend/internal/api/http"
	"github.com/xpdesk/backend/internal/api/middleware"
	"github.com/xpdesk/backend/internal/api/ws"
	"github.com/xpdesk/backend/internal/domain/chrome"
	"github.com/xpdesk/backend/internal/domain/events"
	"github.com/xpdesk/backend/internal/domain/frames"
	"github.com/xpdesk/backend/internal/domain/preload"
	"github.com/xpdesk/backend/internal/domain/registry"
	"github.com/xpdesk/backend/internal/domain/session"
	"github.com/xpdesk/backend/internal/domain/window"
	"github.com/xpdesk/backend/internal/infrastructure/config"
	"github.com/xpdesk/backend/internal/infrastructure/logging"
	"github.com/xpdesk/backend/internal/infrastructure/monitoring"
	"github.com/xpdesk/backend/internal/shared/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	windows  *window.Manager
	programs *registry.Manager
	sessions *session.Manager
	bus      *events.Bus
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing Desktop Server",
		zap.String("port", cfg.Server.Port),
		zap.String("programs_dir", cfg.Desktop.ProgramsDir),
	)

	metrics := monitoring.NewMetrics()
	bus := events.NewBus()

	// Program registry: seed the built-in programs, then overlay anything
	// found in the programs directory.
	programs := registry.NewManager()
	seeder := registry.NewSeeder(programs, cfg.Desktop.ProgramsDir, logger.Logger)
	if err := seeder.SeedDefaults(); err != nil {
		logger.Warn("Failed to seed default programs", zap.Error(err))
	}
	if err := seeder.SeedPrograms(); err != nil {
		logger.Warn("Failed to seed program definitions", zap.Error(err))
	}
	logger.Info("Program registry ready", zap.Int("programs", len(programs.List())))

	viewport := types.Viewport{
		Width:         cfg.Desktop.DefaultWidth,
		Height:        cfg.Desktop.DefaultHeight,
		TaskbarHeight: cfg.Desktop.TaskbarHeight,
	}

	windows := window.NewManager(programs, chrome.NewBuilder(), bus, viewport).
		WithLogger(logger.Logger).
		WithMetrics(metrics)
	windows.WireBus()

	frameRouter := frames.NewRouter(windows, logger.Logger)
	sessions := session.NewManager(windows, cfg.Session.StoragePath).
		WithLogger(logger.Logger).
		WithMetrics(metrics)

	// Warm remote program content in the background
	if cfg.Preload.Enabled {
		warmer := preload.NewWarmer(programs, logger.Logger, cfg.Preload.Timeout)
		warmer.WarmAsync(context.Background())
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(windows, programs, sessions, cfg.Desktop.IconsDir)
	wsHandler := ws.NewHandler(windows, frameRouter, bus, logger.Logger).WithMetrics(metrics)
	windows.SetFrameNotifier(wsHandler)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Window management
	router.GET("/windows", handlers.ListWindows)
	router.GET("/windows/:id", handlers.GetWindow)
	router.POST("/windows/:id/focus", handlers.FocusWindow)
	router.POST("/windows/:id/minimize", handlers.MinimizeWindow)
	router.POST("/windows/:id/restore", handlers.RestoreWindow)
	router.POST("/windows/:id/maximize", handlers.ToggleMaximize)
	router.DELETE("/windows/:id", handlers.CloseWindow)

	// Program registry
	router.GET("/programs", handlers.ListPrograms)
	router.GET("/programs/:key", handlers.GetProgram)
	router.POST("/programs/:key/open", handlers.OpenProgram)

	// Viewport
	router.GET("/viewport", handlers.Viewport)
	router.POST("/viewport", handlers.SetViewport)

	// Session endpoints
	router.POST("/sessions/save", handlers.SaveSession)
	router.POST("/sessions/save-default", handlers.SaveDefaultSession)
	router.GET("/sessions", handlers.ListSessions)
	router.GET("/sessions/:id", handlers.GetSession)
	router.POST("/sessions/:id/restore", handlers.RestoreSession)
	router.DELETE("/sessions/:id", handlers.DeleteSession)

	// Assets
	router.GET("/assets/icons/:name", handlers.GetIcon)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		windows:  windows,
		programs: programs,
		sessions: sessions,
		bus:      bus,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server, saving the workspace so the
// next start can restore it.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if _, err := s.sessions.SaveDefault(); err != nil {
		s.logger.Warn("Failed to save default session on shutdown", zap.Error(err))
	}

	s.logger.Sync()
	return nil
}
