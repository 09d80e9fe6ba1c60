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

	"novelhub/internal/config"
	"novelhub/internal/db"
	"novelhub/internal/logger"
	"novelhub/internal/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	gin.SetMode(cfg.GinMode)

	store := db.Open(cfg.DataDir, db.Options{
		ReseedOnCorrupt: cfg.ReseedOnCorrupt,
		Logger:          zl,
	})
	if err := store.Init(); err != nil {
		zl.Fatal("Failed to open data store", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}
	if cfg.ReseedOnCorrupt {
		zl.Warn("RESEED_ON_CORRUPT is on: unreadable documents will be replaced with seed data")
	}
	if cfg.SessionSecret == "secret_key_change_me" {
		zl.Warn("SESSION_SECRET is not set, using the built-in default")
	}

	r := router.New(router.Deps{
		Store:         store,
		Logger:        zl,
		SessionName:   cfg.SessionName,
		SessionSecret: cfg.SessionSecret,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("NovelHub server starting", zap.String("addr", srv.Addr), zap.String("data_dir", cfg.DataDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("shutdown error", zap.Error(err))
	}
	zl.Info("server stopped")
}
