package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-console/internal/api/http"
	"github.com/spec-kit/employee-console/internal/api/http/handlers"
	"github.com/spec-kit/employee-console/internal/command"
	"github.com/spec-kit/employee-console/internal/config"
	"github.com/spec-kit/employee-console/internal/console"
	"github.com/spec-kit/employee-console/internal/gateway"
	"github.com/spec-kit/employee-console/internal/notify"
	"github.com/spec-kit/employee-console/internal/observability"
	"github.com/spec-kit/employee-console/internal/session"
	"github.com/spec-kit/employee-console/internal/store"
	"github.com/spec-kit/employee-console/internal/views"
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

	client := gateway.NewClient(cfg.Upstream, logger)
	collections := store.New(client, logger)
	notifier := notify.NewCenter(cfg.Notifications.TTL(), logger)
	go notifier.Run(ctx)

	app := console.New(console.Dependencies{
		Store:       collections,
		Table:       views.NewTableState(),
		Employees:   session.NewEmployeeController(client, collections, notifier, logger),
		Departments: session.NewDepartmentController(client, collections, notifier, logger),
		Notifier:    notifier,
		Dispatcher:  command.NewInMemoryDispatcher(),
		Logger:      logger,
	})

	// Initial load; the console stays usable with empty snapshots when the
	// upstream is down.
	if err := collections.RefreshDepartments(ctx); err != nil {
		logger.Warn("initial department load failed", zap.Error(err))
	}
	if err := collections.RefreshEmployees(ctx); err != nil {
		logger.Warn("initial employee load failed", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	server := fiber.New()
	httptransport.RegisterMiddlewares(server, logger, metrics)
	httptransport.RegisterRoutes(server, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, client),
		Dashboard:     handlers.NewDashboardHandler(app),
		Employees:     handlers.NewEmployeesHandler(app),
		Departments:   handlers.NewDepartmentsHandler(app),
		Notifications: handlers.NewNotificationsHandler(app),
	})

	go func() {
		if err := server.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = server.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
