package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/verve-admin/internal/api/http"
	"github.com/spec-kit/verve-admin/internal/api/http/handlers"
	"github.com/spec-kit/verve-admin/internal/auth"
	"github.com/spec-kit/verve-admin/internal/config"
	"github.com/spec-kit/verve-admin/internal/events"
	"github.com/spec-kit/verve-admin/internal/observability"
	"github.com/spec-kit/verve-admin/internal/persistence"
	"github.com/spec-kit/verve-admin/internal/repository"
	"github.com/spec-kit/verve-admin/internal/service"
	"github.com/spec-kit/verve-admin/internal/worker"
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

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	if cfg.Mongo.EnsureIndexes && mongo.Database() != nil {
		if err := persistence.EnsureIndexes(ctx, mongo.Database(), logger); err != nil {
			logger.Fatal("failed to ensure indexes", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	db := mongo.Database()
	userRepo := repository.NewAppUserRepository(db)
	reclamationRepo := repository.NewReclamationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	sponsorshipRepo := repository.NewSponsorshipRepository(db)
	accessRequestRepo := repository.NewAccessRequestRepository(db)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartInvalidationBroadcaster(dispatcher, redis, logger, cfg.Redis.InvalidationChannel)

	authService := service.NewAuthService(cfg.Auth)
	userService := service.NewUserService(userRepo, dispatcher, cfg.Auth.BcryptCost)
	reclamationService := service.NewReclamationService(reclamationRepo, dispatcher)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, dispatcher)
	sponsorshipService := service.NewSponsorshipService(sponsorshipRepo, userRepo, dispatcher)
	accessRequestService := service.NewAccessRequestService(accessRequestRepo, dispatcher)

	sessionGate := auth.NewSessionGate(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Reclamations:   handlers.NewReclamationsHandler(reclamationService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Sponsorships:   handlers.NewSponsorshipsHandler(sponsorshipService),
		AccessRequests: handlers.NewAccessRequestsHandler(accessRequestService),
		SessionGate:    sessionGate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
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
