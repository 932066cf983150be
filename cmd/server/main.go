package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/employee"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
	"github.com/ogurasousui/codex-employee-shifts/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-shifts/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-employee-shifts/internal/platform/logging"
	"github.com/ogurasousui/codex-employee-shifts/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := pg.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize database pool", zap.Error(err))
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	shiftRepo := postgres.NewShiftRepository(dbPool)

	store := shift.NewStore(shiftRepo, employeeRepo, txManager,
		shift.WithLogger(logger),
		shift.WithUpsertTimeout(cfg.Shift.UpsertTimeout),
	)
	shiftSvc := shift.NewService(store, logger)
	employeeSvc := employee.NewService(employeeRepo, nil, txManager)

	srv := server.New(cfg.Server, shiftSvc, employeeSvc, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}
