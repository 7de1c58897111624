package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/loomandfold/loom/internal/shop/http"
	"github.com/loomandfold/loom/internal/shop/mailer"
	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/internal/shop/store/drivers/sqlite"
	"github.com/loomandfold/loom/pkg/cryptox"
	"github.com/loomandfold/loom/pkg/jwtx"
	"github.com/loomandfold/loom/pkg/otpx"
	"github.com/loomandfold/loom/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the shop service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *jwtx.KeySet
	verifier jwtx.Verifier
	ledger   *otpx.Ledger
	mail     mailer.Mailer

	// Services
	scopeService        *service.ScopeService
	userService         *service.UserService
	shopService         *service.ShopService
	productService      *service.ProductService
	orderService        *service.OrderService
	lookService         *service.LookService
	partnerService      *service.PartnerService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "shop-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, verifier, err := InitSessionKeys(app.cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.keys = keys
	app.verifier = verifier

	if err := app.initLedger(); err != nil {
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("shop service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down shop service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("shop service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initLedger sets up the verification code ledger. The HMAC secret must
// be configured outside dev so cookies stay valid across replicas and
// restarts; dev falls back to a per-process random secret.
func (app *Application) initLedger() error {
	secret := []byte(app.cfg.OTPSecret)

	if len(secret) == 0 {
		if app.cfg.Env != "dev" && app.cfg.Env != "test" {
			return errors.New("verification code secret required: set SHOP_OTP_SECRET")
		}

		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate dev verification secret: %w", err)
		}
		secret = []byte(generated)
		app.logger.Warn("no verification code secret configured, generated a per-process one")
		app.logger.Warn("all outstanding verification codes are now invalid")
	}

	app.ledger = &otpx.Ledger{
		Secret: secret,
		TTL:    app.cfg.OTPTTL,
		Secure: app.cfg.CookieSecure,
	}
	return nil
}

// initMailer selects the verification email transport. No SMTP host
// means the log mailer, which only ever belongs in dev.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.mail = &mailer.LogMailer{Logger: app.logger}
		app.logger.Warn("no SMTP host configured, verification codes will be logged instead of emailed")
		return
	}

	app.mail = mailer.NewSMTPMailer(
		app.cfg.SMTPHost,
		app.cfg.SMTPPort,
		app.cfg.SMTPFrom,
		app.cfg.SMTPUser,
		app.cfg.SMTPPass,
	)
	app.logger.Info("SMTP mailer configured", "host", app.cfg.SMTPHost, "port", app.cfg.SMTPPort)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.scopeService = &service.ScopeService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.shopService = &service.ShopService{Store: app.db}
	app.productService = &service.ProductService{Store: app.db}
	app.orderService = &service.OrderService{Store: app.db}
	app.lookService = &service.LookService{Store: app.db}
	app.partnerService = &service.PartnerService{
		Store:  app.db,
		Mailer: app.mail,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.ledger,
		app.cfg.CORSOrigin,
		app.logger,
	)

	// Wire services to router
	router.ScopeService = app.scopeService
	router.UserService = app.userService
	router.ShopService = app.shopService
	router.ProductService = app.productService
	router.OrderService = app.orderService
	router.LookService = app.lookService
	router.PartnerService = app.partnerService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
