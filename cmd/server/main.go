package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/http/handler"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/http/router"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"github.com/ogurasousui/codex-employee-records/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-employee-records/internal/platform/logger"
	"github.com/ogurasousui/codex-employee-records/internal/platform/server"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env が無い環境では環境変数のみを使います。
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	employeeSvc := employee.NewService(employeeRepo)

	engine := router.New(router.Config{
		EmployeeHandler:    handler.NewEmployeeHandler(employeeSvc, zl),
		HealthHandler:      handler.NewHealthHandler(dbPool, zl),
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:             zl,
	})

	srv := server.New(engine, server.Options{
		ListenAddr:       cfg.Server.ListenAddr,
		HealthListenAddr: cfg.Server.HealthListenAddr,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
		Logger:           zl,
	})

	return srv.Run(ctx)
}
