// Package server wires the slug shortener together and runs its HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go-slug-shortener/config"
	"go-slug-shortener/handlers"
	"go-slug-shortener/services"
	"go-slug-shortener/storage"
	"go-slug-shortener/urlgen"
	"go.uber.org/zap"
)

// Run serves the API until ctx is done, then shuts the server down gracefully.
func Run(ctx context.Context, logger *zap.Logger, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store := setupStorage(cfg, logger)

	urlHandler, err := setupURLHandler(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	router := setupRouter(urlHandler, cfg, logger)
	srv := setupServer(cfg, router)

	serveErr := make(chan error, 1)
	go startServer(srv, logger, serveErr)

	return waitForShutdown(ctx, srv, serveErr, cfg.ShutdownTimeout, logger)
}

func setupStorage(cfg *config.Config, logger *zap.Logger) storage.Storage {
	gen := urlgen.New(urlgen.DefaultSource(), cfg.SlugLength)
	return storage.NewInMemoryStorage(gen, cfg.MaxSlugAttempts, logger.Named("storage"))
}

func setupURLHandler(ctx context.Context, cfg *config.Config, store storage.Storage, logger *zap.Logger) (handlers.URLHandlerInterface, error) {
	urlService := services.NewURLService(store)

	handler, err := handlers.NewURLHandler(ctx, urlService, cfg, logger.Named("handlers"))
	if err != nil {
		logger.Error("Failed to create URL handler", zap.Error(err))
		return nil, err
	}

	logger.Debug("URL handler created successfully")
	return handler, nil
}

func setupRouter(urlHandler handlers.URLHandlerInterface, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), handlers.LoggerMiddleware(logger.Named("http")))
	handlers.RegisterRoutes(router, urlHandler, cfg)
	return router
}

func setupServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}
}

func startServer(srv *http.Server, logger *zap.Logger, serveErr chan<- error) {
	logger.Info("Server running", zap.String("address", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", zap.Error(err))
		serveErr <- err
		return
	}
	logger.Debug("Server stopped")
}

func waitForShutdown(ctx context.Context, srv *http.Server, serveErr <-chan error, timeout time.Duration, logger *zap.Logger) error {
	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Info("Received shutdown signal. Initiating server shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server gracefully stopped")
	return nil
}
