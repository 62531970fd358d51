package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/CU-CodingClub/Main/internal/techfest/http"
	"github.com/CU-CodingClub/Main/internal/techfest/mail"
	"github.com/CU-CodingClub/Main/internal/techfest/service"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/internal/techfest/store/drivers/memory"
	mongostore "github.com/CU-CodingClub/Main/internal/techfest/store/drivers/mongo"
	"github.com/CU-CodingClub/Main/internal/techfest/store/hybrid"
	"github.com/CU-CodingClub/Main/pkg/jwtx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the event platform service with all its
// dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.Signer
	mailer mail.Mailer

	authService         *service.Auth
	profileService      *service.Profile
	registrationService *service.Registration
	adminService        *service.Admin

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "techfest-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.signer = jwtx.NewSigner(cfg.SessionSecret, cfg.TokenTTL)

	app.initStore()
	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("techfest api starting", "port", app.cfg.Port, "version", BuildVersion)

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
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down techfest api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(ctx); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("techfest api stopped")
	return nil
}

// initStore wires the storage layer. With no Mongo URI configured the
// service runs purely in memory; otherwise the hybrid store serves from
// memory until Mongo comes up within the grace period.
func (app *Application) initStore() {
	mem := memory.NewStore()

	if app.cfg.MongoURI == "" {
		app.logger.Warn("MONGODB_URI not set, running on in-memory store only")
		app.db = mem
		return
	}

	opener := func(ctx context.Context) (store.Store, error) {
		return mongostore.NewStore(ctx, app.cfg.MongoURI, app.cfg.MongoDatabase, app.logger)
	}
	app.db = hybrid.New(mem, opener, app.cfg.MongoGracePeriod, app.logger)
}

func (app *Application) initMailer() {
	smtpCfg := mail.SMTPConfig{
		Host: app.cfg.SMTPHost,
		Port: app.cfg.SMTPPort,
		User: app.cfg.SMTPUser,
		Pass: app.cfg.SMTPPass,
	}
	if smtpCfg.Configured() {
		app.mailer = mail.NewSMTPMailer(smtpCfg)
		return
	}
	app.logger.Warn("smtp not configured, email delivery disabled")
	app.mailer = mail.LogMailer{Logger: app.logger}
}

func (app *Application) initServices() {
	app.authService = service.NewAuth(app.db, app.signer, app.mailer, app.logger)
	app.profileService = service.NewProfile(app.db, app.logger)
	app.registrationService = service.NewRegistration(app.db, app.mailer, app.logger)
	app.adminService = service.NewAdmin(app.db, app.logger)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.signer, BuildVersion, app.logger)

	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.RegistrationService = app.registrationService
	router.AdminService = app.adminService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
