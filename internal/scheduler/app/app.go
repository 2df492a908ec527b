package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/scheduler/internal/scheduler/http"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/notify"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/service"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite"
	"github.com/aussiebroadwan/scheduler/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the scheduler service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	notifier notify.Notifier

	bookingService      *service.BookingService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "scheduler",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.notifier = app.newNotifier()

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("scheduler starting",
		slog.Int("port", app.cfg.Port),
		slog.String("version", BuildVersion),
		slog.String("notifier", app.cfg.Notifier),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down scheduler...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slog.Any("error", err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slog.Any("error", err))
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slog.Any("error", err))
		return err
	}

	app.logger.Info("scheduler stopped")
	return nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initDatabase() error {
	dsn := app.cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
			app.cfg.DatabaseFile,
		)
	}

	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully",
		slog.String("file", app.cfg.DatabaseFile),
	)
	return nil
}

func (app *Application) newNotifier() notify.Notifier {
	var n notify.Notifier

	switch strings.ToLower(app.cfg.Notifier) {
	case "smtp":
		n = &notify.SMTPNotifier{
			Host:     app.cfg.SMTP.Host,
			Port:     app.cfg.SMTP.Port,
			Username: app.cfg.SMTP.Username,
			Password: app.cfg.SMTP.Password,
			From:     app.cfg.SMTP.From,
		}
	case "amqp":
		n = &notify.AMQPNotifier{
			URL:   app.cfg.AMQP.URL,
			Queue: app.cfg.AMQP.Queue,
		}
	default:
		n = notify.LogNotifier{}
	}

	app.logger.Info("notifier configured",
		slog.String("notifier", app.cfg.Notifier),
		slog.Duration("timeout", app.cfg.NotifyTimeout),
	)
	return notify.WithTimeout(n, app.cfg.NotifyTimeout)
}

func (app *Application) initServices() error {
	app.bookingService = &service.BookingService{
		Store:          app.db,
		Notifier:       app.notifier,
		Organizer:      app.cfg.Organizer,
		InviteDuration: app.cfg.InviteDuration,
		Now:            time.Now,
	}

	hk, err := service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingSchedule,
		app.cfg.BookingRetention,
	)
	if err != nil {
		return err
	}
	app.housekeepingService = hk
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.cfg.RateLimits.Limits(),
		app.logger,
	)
	router.BookingService = app.bookingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
