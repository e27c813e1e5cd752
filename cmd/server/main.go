// @title                       University Event Portal API
// @version                     1.0
// @description                 Events, announcements and student inquiries for the campus portal.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/uniportal/event-portal/internal/api"
	"github.com/uniportal/event-portal/internal/api/handler"
	"github.com/uniportal/event-portal/internal/api/metrics"
	"github.com/uniportal/event-portal/internal/core/domain"
	"github.com/uniportal/event-portal/internal/core/ports"
	"github.com/uniportal/event-portal/internal/core/service"
	mongodb "github.com/uniportal/event-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/uniportal/event-portal/internal/infrastructure/db/redis"
	"github.com/uniportal/event-portal/internal/infrastructure/storage"
	"github.com/uniportal/event-portal/internal/pkg/config"
	"github.com/uniportal/event-portal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "event-portal",
	})

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	checks := map[string]handler.DependencyCheck{"mongodb": handler.MongoCheck(db)}

	var denylist ports.TokenDenylist
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// Logout revocation is unavailable without Redis; tokens still expire.
			log.Warn().Err(err).Msg("redis unavailable, token revocation disabled")
		} else {
			defer rdb.Close()
			denylist = redisdb.NewTokenDenylist(rdb)
			checks["redis"] = handler.RedisCheck(rdb)
		}
	}

	files, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)

	// --- Bootstrap admin (runs once, before the listener) ---
	if err := service.SeedAdmin(ctx, userRepo, service.AdminSeed{
		Name:       cfg.Seed.Name,
		Email:      cfg.Seed.Email,
		Password:   cfg.Seed.Password,
		StudentID:  cfg.Seed.StudentID,
		BcryptCost: cfg.Auth.BcryptCost,
	}, logger.Component("seed")); err != nil {
		log.Error().Err(err).Msg("admin seed failed")
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, service.AuthOptions{
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
		Denylist:   denylist,
	}, logger.Component("auth"))

	eventService := service.NewEventService(eventRepo, logger.Component("events"), func(e *domain.Event) {
		metrics.EventsCreatedTotal.WithLabelValues(e.Category).Inc()
	})
	inquiryService := service.NewInquiryService(inquiryRepo, logger.Component("inquiries"), func(transition string) {
		metrics.InquiryTransitionsTotal.WithLabelValues(transition).Inc()
	})
	uploadService := service.NewUploadService(files, service.UploadOptions{
		PublicPrefix: "/uploads",
		MaxBytes:     cfg.Upload.MaxBytes,
		Thumbnailer:  storage.NewThumbnailer(),
		OnResult: func(result string) {
			metrics.UploadsTotal.WithLabelValues(result).Inc()
		},
	}, logger.Component("uploads"))

	router := api.NewRouter(api.Dependencies{
		Auth:          authService,
		Events:        eventService,
		Announcements: service.NewAnnouncementService(announcementRepo, logger.Component("announcements")),
		Inquiries:     inquiryService,
		Dashboard:     service.NewDashboardService(userRepo, eventRepo, inquiryRepo),
		Users:         service.NewUserService(userRepo, logger.Component("users")),
		Uploads:       uploadService,
		Checks:        checks,
		UploadDir:     files.Dir(),
		CORSOrigins:   cfg.CORSOrigins,
		Logger:        logger.Component("http"),
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
