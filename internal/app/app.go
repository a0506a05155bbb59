package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joshishrau/FacilityFlow/internal/auth"
	"github.com/joshishrau/FacilityFlow/internal/config"
	"github.com/joshishrau/FacilityFlow/internal/dispatch"
	"github.com/joshishrau/FacilityFlow/internal/filestore"
	"github.com/joshishrau/FacilityFlow/internal/handler"
	"github.com/joshishrau/FacilityFlow/internal/metrics"
	"github.com/joshishrau/FacilityFlow/internal/middleware"
	"github.com/joshishrau/FacilityFlow/internal/notification"
	"github.com/joshishrau/FacilityFlow/internal/repository"
	"github.com/joshishrau/FacilityFlow/internal/router"
	"github.com/joshishrau/FacilityFlow/internal/service"
	"github.com/joshishrau/FacilityFlow/internal/slotgrid"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	dispatcher *dispatch.Dispatcher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"FacilityFlow",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	notificationRepo := repository.NewNotificationRepo(a.db)

	sender, err := notification.NewTelegramSender(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init telegram sender: %w", err)
	}

	notificationService := service.NewNotificationService(
		notificationRepo,
		userRepo,
		sender,
		a.cfg.Dispatch.BatchSize,
		a.log,
	)

	catalog := slotgrid.Catalog(a.cfg.Booking.DayStartHour, a.cfg.Booking.DayEndHour)
	bookingService := service.NewBookingService(
		bookingRepo,
		userRepo,
		notificationService,
		catalog,
		a.log,
	)
	userService := service.NewUserService(userRepo)

	a.dispatcher = dispatch.New(
		notificationService,
		a.cfg.Dispatch.Interval,
		a.log,
	)

	files, err := filestore.NewLocalStore(a.cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	verifier := auth.NewTokenVerifier(a.cfg.Auth.JWTSecret)

	h := handler.NewHandler(bookingService, userService, files)

	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	}
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
		mw = append(mw, middleware.Metrics(metrics.New("facilityflow")))
	}

	r := router.InitRouter(
		router.Options{
			Mode:        a.cfg.Gin.Mode,
			UploadsDir:  files.Dir(),
			MetricsPath: metricsPath,
			Auth:        middleware.Auth(verifier),
		},
		h,
		mw...,
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.dispatcher.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
