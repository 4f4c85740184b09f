package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taruma/dash-hidrokit-rainfall/internal/config"
	"github.com/taruma/dash-hidrokit-rainfall/internal/logger"
	"github.com/taruma/dash-hidrokit-rainfall/internal/server"
	"github.com/taruma/dash-hidrokit-rainfall/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		logger.Global().SetLevel(level)
	}

	deploymentMode := storage.DeploymentLocal
	if cfg.GCSBucket != "" {
		deploymentMode = storage.DeploymentGCS
	}

	log := logger.Global().WithComponent("main")
	log.Info("Starting Rainfall Dashboard Service", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"mode":        string(deploymentMode),
		"version":     config.GetVersion(),
	})

	srv, err := server.NewServer(cfg, deploymentMode)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // dashboard generation can take a while
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped")
}
