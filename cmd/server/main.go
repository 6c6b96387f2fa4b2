package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/config"
	"github.com/dioadam27-sketch/SIMPDB/internal/api/handler"
	"github.com/dioadam27-sketch/SIMPDB/internal/api/router"
	"github.com/dioadam27-sketch/SIMPDB/internal/repository"
	"github.com/dioadam27-sketch/SIMPDB/internal/service"
	"github.com/dioadam27-sketch/SIMPDB/internal/sheet"
	"github.com/dioadam27-sketch/SIMPDB/pkg/jwt"
	applogger "github.com/dioadam27-sketch/SIMPDB/pkg/logger"
	"github.com/dioadam27-sketch/SIMPDB/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Redis (optional: degrade without token blacklist)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist disabled", zap.Error(err))
		rdb = nil
	}

	// 4. In-memory store + sheet client
	repo := repository.NewMemory()
	sheetClient := sheet.NewClient(&cfg.Sheet, logger)

	// 5. JWT manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Dependency wiring: Repository → Service → Handler
	svc := service.NewService(cfg, repo, sheetClient, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Bootstrap local state: seed defaults, then try the remote
	//    snapshot. A failed fetch is not fatal; the system starts in
	//    offline mode and a later manual refresh recovers.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if cfg.Feature.SeedDefaultClasses {
		if err := svc.Master.SeedDefaultClasses(bootCtx); err != nil {
			logger.Fatal("failed to seed default classes", zap.Error(err))
		}
	}
	if _, err := svc.Sync.Refresh(bootCtx); err != nil {
		logger.Warn("initial sync failed, starting offline", zap.Error(err))
	}
	bootCancel()

	// 8. Router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 9. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 10. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
