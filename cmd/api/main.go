package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-book/internal/cache"
	"github.com/BruksfildServices01/barber-book/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-book/internal/db"
	"github.com/BruksfildServices01/barber-book/internal/logger"
	"github.com/BruksfildServices01/barber-book/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg, zlog)

	rdb, err := cache.NewRedisClient(cfg)
	if err != nil {
		// The catalog cache is an optimization; the API runs without it.
		zlog.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		rdb = nil
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, rdb, cfg, zlog)

	zlog.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
