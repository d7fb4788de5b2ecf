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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/nearbiz/internal/audit"
	"github.com/BruksfildServices01/nearbiz/internal/config"
	dbpkg "github.com/BruksfildServices01/nearbiz/internal/db"
	"github.com/BruksfildServices01/nearbiz/internal/infra/cache"
	"github.com/BruksfildServices01/nearbiz/internal/infra/nearbiz"
	"github.com/BruksfildServices01/nearbiz/internal/logger"
	"github.com/BruksfildServices01/nearbiz/internal/middleware"
	"github.com/BruksfildServices01/nearbiz/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLog.Sync()
	zap.ReplaceGlobals(zapLog)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		zapLog.Fatal("failed to connect database", zap.Error(err))
	}

	// ------------------------------
	// Cache (Redis, else in-process)
	// ------------------------------
	var store cache.Cache = cache.NewMemory()
	switch {
	case cfg.CacheTTL <= 0:
		store = cache.Noop{}
	case cfg.RedisAddr != "":
		rdb, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zapLog.Warn("redis unavailable, using in-process cache", zap.Error(err))
		} else {
			defer rdb.Close()
			store = cache.NewRedis(rdb, "nearbiz:")
		}
	}

	upstream := nearbiz.NewClient(nearbiz.Config{
		BaseURL:    cfg.NearbizBaseURL,
		BookingURL: cfg.NearbizBookingURL,
		Timeout:    cfg.NearbizTimeout,
	}, zapLog.Named("nearbiz"))

	dispatcher := audit.NewDispatcher(audit.New(db), zapLog.Named("audit"))
	defer dispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(zapLog),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Infra{
		DB:       db,
		Upstream: upstream,
		Cache:    store,
		Audit:    dispatcher,
		Log:      zapLog,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}
	zapLog.Info("server stopped")
}
