package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/config"
	"github.com/spec-kit/employee-console/internal/hrapi"
	"github.com/spec-kit/employee-console/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := hrapi.NewPostgresPool(ctx, cfg.HRAPI, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	if pool != nil {
		defer pool.Close()
		if err := hrapi.EnsureSchema(ctx, pool, logger); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
	}

	var employeeRepo hrapi.EmployeeRepository
	var departmentRepo hrapi.DepartmentRepository
	if pool != nil {
		employeeRepo = hrapi.NewPostgresEmployeeRepository(pool)
		departmentRepo = hrapi.NewPostgresDepartmentRepository(pool)
	} else {
		employeeRepo = hrapi.NewMemoryEmployeeRepository()
		departmentRepo = hrapi.NewMemoryDepartmentRepository()
	}

	redisClient := hrapi.NewRedisClient(cfg.HRAPI, logger)
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck
	}
	cache := hrapi.NewListCache(redisClient, cfg.HRAPI.CacheTTL(), logger)

	employees := hrapi.NewEmployeeService(employeeRepo, cache)
	departments := hrapi.NewDepartmentService(departmentRepo, employeeRepo, cache)

	app := hrapi.NewServer(employees, departments, logger)

	go func() {
		if err := app.Listen(cfg.HRAPI.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
