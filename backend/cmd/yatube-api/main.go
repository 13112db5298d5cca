package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/itchan-dev/yatube/backend/internal/router"
	"github.com/itchan-dev/yatube/backend/internal/setup"
	"github.com/itchan-dev/yatube/shared/config"
	"github.com/itchan-dev/yatube/shared/logger"
	"github.com/xlab/closer"
)

func main() {
	defer closer.Close()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		closer.Exit(1)
	}
	closer.Bind(func() {
		if err := deps.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Public.HttpPort,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	// bound after storage so it runs first: closer calls bindings in reverse order
	closer.Bind(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.Error("server shutdown failed", "error", err)
		}
		logger.Log.Info("server stopped")
	})

	go func() {
		logger.Log.Info("server started", "port", cfg.Public.HttpPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			closer.Exit(1)
		}
	}()

	closer.Hold()
}
