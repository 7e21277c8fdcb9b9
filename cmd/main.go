package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafesync/config"
	"cafesync/database"
	"cafesync/realtime"
	"cafesync/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	if err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.DBName); err != nil {
		logger.Fatal("connecting to mongodb", zap.Error(err))
	}
	database.InitCollections()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx); err != nil {
		cancel()
		logger.Fatal("creating indexes", zap.Error(err))
	}
	cancel()
	logger.Info("database connected", zap.String("db", cfg.Mongo.DBName))

	hub := realtime.NewHub(logger)
	go hub.Run()

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r, hub, []byte(cfg.Auth.JWTSecret), logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongodb disconnect", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
