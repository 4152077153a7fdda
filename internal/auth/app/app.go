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

	httpapi "github.com/aussiebroadwan/pitwall/internal/auth/http"
	"github.com/aussiebroadwan/pitwall/internal/auth/service"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
	"github.com/aussiebroadwan/pitwall/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/pitwall/pkg/cryptox"
	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
	"github.com/aussiebroadwan/pitwall/pkg/qrcode"
	"github.com/aussiebroadwan/pitwall/pkg/slogx"
	"github.com/aussiebroadwan/pitwall/pkg/totpx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/pitwall/internal/auth/app.BuildVersion=...".
var BuildVersion = "dev"

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager
	cipher     *cryptox.SecretCipher

	// Services
	authService      *service.AuthService
	adminService     *service.AdminService
	twoFactorService *service.TwoFactorService
	userService      *service.UserService
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cipher, err := InitSecretCipher(cfg)
	if err != nil {
		return nil, err
	}
	app.cipher = cipher

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitAuthKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = keyManager

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := app.cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
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

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	engine := totpx.New(app.cfg.TOTPIssuer)
	qr := qrcode.Renderer{Size: app.cfg.QRCodeSize}

	app.authService = &service.AuthService{
		Store:  app.db,
		Cipher: app.cipher,
		TOTP:   engine,
		Sessions: &service.SessionIssuer{
			Signer: app.keyManager.Signer,
			Issuer: app.cfg.Issuer,
			TTL:    app.cfg.SessionTTL,
		},
	}
	app.adminService = &service.AdminService{
		Store:  app.db,
		Cipher: app.cipher,
		TOTP:   engine,
		QR:     qr,
	}
	app.twoFactorService = &service.TwoFactorService{
		Store:  app.db,
		Cipher: app.cipher,
		TOTP:   engine,
		QR:     qr,
		Policy: service.DisablePolicy{RequireCode: app.cfg.DisableRequiresCode},
	}
	app.userService = &service.UserService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	if app.cfg.BootstrapToken != "" {
		app.logger.Info("bootstrap endpoint enabled")
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.AdminService = app.adminService
	router.TwoFactorService = app.twoFactorService
	router.UserService = app.userService
	router.BootstrapService = app.bootstrapService
	router.RequireAdminSession = app.cfg.AdminRequireSession
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
