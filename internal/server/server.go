package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emberchat/backend/internal/api/middleware"
	"github.com/emberchat/backend/internal/config"
	"github.com/emberchat/backend/internal/infrastructure/monitoring"
	"github.com/emberchat/backend/internal/logging"
	"github.com/emberchat/backend/internal/protocol"
	"github.com/emberchat/backend/internal/registry"
	"github.com/emberchat/backend/internal/shared/paths"
)

// Server wraps the broker HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	registry *registry.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *http.Server
}

// New builds the server: allow list from the collaborator roots, the
// file-scheme gate, deny-all registrations for disabled schemes, and
// the gin router with its middleware chain.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := paths.Validate(cfg.Gate.UserDataDir, cfg.Gate.InstallDir); err != nil {
		return nil, err
	}

	platform := protocol.Platform{Windows: cfg.Gate.Windows}
	allow, err := protocol.NewAllowList(platform,
		paths.AllowedDirectories(cfg.Gate.UserDataDir, cfg.Gate.InstallDir)...)
	if err != nil {
		return nil, fmt.Errorf("build allow list: %w", err)
	}

	gate := protocol.NewGate(platform, allow, logger.Logger)

	reg := registry.New()
	if err := reg.Register("file", gate.Handle); err != nil {
		return nil, err
	}
	for _, scheme := range protocol.DisabledSchemes(cfg.Gate.AllowExternalNetwork) {
		if err := reg.Register(scheme, protocol.DenyAll); err != nil {
			return nil, err
		}
	}
	logger.Info("protocol handlers registered",
		zap.Strings("allowed_roots", allow.Roots()),
		zap.Int("schemes", len(reg.Schemes())),
	)

	metrics := monitoring.NewMetrics()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(monitoring.Middleware(metrics))

	s := &Server{
		cfg:      cfg,
		router:   router,
		registry: reg,
		metrics:  metrics,
		logger:   logger,
	}

	router.POST("/protocol/resolve", s.handleResolve)
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", metrics.Handler())

	return s, nil
}

// resolveRequest is the broker's wire form of an intercepted request.
type resolveRequest struct {
	Scheme string `json:"scheme"`
	URL    string `json:"url"`
}

// handleResolve dispatches one intercepted request through the
// registry and returns the decision body. Allowed requests carry the
// canonical path; denied requests carry only the net error code.
func (s *Server) handleResolve(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	var req resolveRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	decision := s.registry.Dispatch(req.Scheme, protocol.Request{
		Scheme: req.Scheme,
		URL:    req.URL,
	})
	s.metrics.RecordDecision(req.Scheme, decision.Allowed, decision.Code)

	out, err := sonic.Marshal(decision)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode decision"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"registry": s.registry.Stats(),
	})
}

// Run starts the broker listener and blocks until it stops.
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.logger.Info("broker listening", zap.String("addr", addr))

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the listener down gracefully.
func (s *Server) Close() error {
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}
