package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oshokin/disk-bundler/internal/config"
	"github.com/oshokin/disk-bundler/internal/logger"
	"github.com/oshokin/disk-bundler/internal/service/disk"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 10 * time.Second

// Server serves the web surface over the aggregation service.
type Server struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// diskService provides listings, link resolution, and archive building.
	diskService disk.Service
	// router dispatches inbound requests.
	router *gin.Engine
}

// NewServer creates a server with its routes and middleware registered.
func NewServer(cfg *config.Config, diskService disk.Service) *Server {
	if !logger.IsDebugLevel() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestContextMiddleware())
	router.HandleMethodNotAllowed = true
	router.SetHTMLTemplate(pageTemplates())

	s := &Server{
		cfg:         cfg,
		diskService: diskService,
		router:      router,
	}

	router.GET("/", s.handleIndex)
	router.POST("/", s.handleListing)
	router.GET("/download/:public_key/*file_path", s.handleDownload)
	router.POST("/download_multiple/:public_key", s.handleDownloadMultiple)
	router.GET("/download_local", s.handleDownloadLocal)
	router.GET("/health", s.handleHealth)

	return s
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves requests until the context is canceled, then shuts down
// gracefully, letting in-flight requests finish.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddress,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ParsedRequestTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Infof(ctx, "Listening on %s", s.cfg.ListenAddress)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
