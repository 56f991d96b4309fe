package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/storage"
	"github.com/portfolio/backend/internal/validation"
	"github.com/portfolio/backend/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logCloser := logging.Setup(cfg.Log)
	defer logCloser.Close()

	ctx := context.Background()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	sender := newSender(cfg.Mail)

	store, closeStore := newStorage(ctx, cfg.Storage)
	defer closeStore()

	v := validation.New()
	contactRepo := repository.NewPgContactRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	experienceRepo := repository.NewPgExperienceRepository(pool)

	notifier := service.NewNotificationService(sender, service.NotificationConfig{
		OwnerName:    cfg.Owner.Name,
		OwnerTitle:   cfg.Owner.Title,
		OwnerAddress: cfg.Mail.Recipient(),
		Timeout:      cfg.Mail.Timeout,
	})
	contactService := service.NewContactService(contactRepo, v, notifier)
	projectService := service.NewProjectService(projectRepo, v, store)
	experienceService := service.NewExperienceService(experienceRepo, v)

	exposeErrors := !cfg.IsProduction()
	limiter := handler.NewRateLimiter(cfg.ContactRateLimit)
	defer limiter.Stop()

	routes := handler.RouterConfig{
		Base:           handler.New(pool, cfg.FrontendURL),
		Contact:        handler.NewContactHandler(contactService, exposeErrors),
		Projects:       handler.NewProjectHandler(projectService, exposeErrors),
		Experiences:    handler.NewExperienceHandler(experienceService, exposeErrors),
		ContactLimiter: limiter,
	}
	if local, ok := store.(*storage.LocalStorage); ok {
		routes.UploadDir = local.BaseDir()
		routes.UploadPrefix = local.URLPrefix()
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(routes),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"env", cfg.Environment,
			"storage", store.Driver(),
			"mail", cfg.Mail.Enabled(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newSender returns an SMTP client when mail is configured and a logging
// sender otherwise.
func newSender(cfg config.MailConfig) mailer.Sender {
	if !cfg.Enabled() {
		slog.Warn("mail not configured; notifications will only be logged")
		return mailer.LogSender{Logger: slog.Default()}
	}
	client, err := mailer.NewSMTPClient(mailer.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Secure:   cfg.Secure,
		Username: cfg.User,
		Password: cfg.Password,
		From:     cfg.Sender(),
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		logging.Fatal("failed to configure mailer", "error", err)
	}
	return client
}

func newStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, func()) {
	if cfg.Driver == config.StorageGCS {
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile)
		if err != nil {
			logging.Fatal("failed to create GCS client", "error", err)
		}
		return gcs, func() {
			if err := gcs.Close(); err != nil {
				slog.Error("failed to close GCS client", "error", err)
			}
		}
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logging.Fatal("failed to create upload dir", "dir", cfg.UploadDir, "error", err)
	}
	return storage.NewLocalStorage(cfg.UploadDir, cfg.URLPrefix), func() {}
}
