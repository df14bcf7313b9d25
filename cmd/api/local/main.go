//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/bootstrap"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/server"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := bootstrap.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	svcs, err := bootstrap.NewServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer svcs.Close()

	srv := server.New(cfg, svcs.Names, svcs.Stats)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.APIPort), zap.String("stage", cfg.Stage))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
