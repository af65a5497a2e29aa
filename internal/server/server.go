package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/court-case-sync/internal/api"
	"github.com/JustJay7/court-case-sync/internal/cache"
	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/database"
	"github.com/JustJay7/court-case-sync/internal/syncer"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

type Server struct {
	cfg     *config.Config
	store   *database.Store
	cache   cache.Cache
	logger  *logger.Logger
	router  *gin.Engine
	syncer  *syncer.Syncer
	closers []io.Closer
}

// New builds the HTTP server. closers are closed, in order, after the
// listener and the scheduler have stopped.
func New(cfg *config.Config, store *database.Store, cache cache.Cache, s *syncer.Syncer, logger *logger.Logger, closers ...io.Closer) *Server {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(corsMiddleware())

	server := &Server{
		cfg:     cfg,
		store:   store,
		cache:   cache,
		logger:  logger,
		router:  router,
		syncer:  s,
		closers: closers,
	}

	api.SetupRoutes(router, store, cache, s, logger, cfg)

	return server
}

func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", "error", err)
		}
	}()

	s.logger.Info("Server started", "address", srv.Addr)

	schedCtx, stopScheduler := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	if s.cfg.SyncInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.syncer.Run(schedCtx, s.cfg.SyncInterval)
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)
	if shutdownErr != nil {
		s.logger.Error("Server forced to shutdown", "error", shutdownErr)
	}

	stopScheduler()
	wg.Wait()

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Error("Failed to close resource", "error", err)
		}
	}

	if shutdownErr != nil {
		return shutdownErr
	}
	s.logger.Info("Server exited gracefully")
	return nil
}

func loggingMiddleware(logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		fields := []interface{}{
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("HTTP Request", fields...)
			return
		}
		logger.Info("HTTP Request", fields...)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
