package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/cfm-kit/complaint-service/internal/api/http"
	"github.com/cfm-kit/complaint-service/internal/api/http/handlers"
	"github.com/cfm-kit/complaint-service/internal/auth"
	"github.com/cfm-kit/complaint-service/internal/config"
	"github.com/cfm-kit/complaint-service/internal/events"
	"github.com/cfm-kit/complaint-service/internal/observability"
	"github.com/cfm-kit/complaint-service/internal/persistence"
	"github.com/cfm-kit/complaint-service/internal/repository"
	"github.com/cfm-kit/complaint-service/internal/service"
	"github.com/cfm-kit/complaint-service/internal/storage"
	"github.com/cfm-kit/complaint-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	responseRepo := repository.NewResponseRepository(pool)
	lookupRepo := repository.NewLookupRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	sessions := auth.NewSessionStore(redis.Client, cfg.Session.TTL())
	fileStore := storage.NewFileStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(userRepo, sessions)
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		ComplaintRepo: complaintRepo,
		FileStore:     fileStore,
		Dispatcher:    dispatcher,
	})
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		AssignmentRepo: assignmentRepo,
		ComplaintRepo:  complaintRepo,
		LookupRepo:     lookupRepo,
		UserRepo:       userRepo,
		Dispatcher:     dispatcher,
	})
	responseService := service.NewResponseService(service.ResponseDependencies{
		ResponseRepo:   responseRepo,
		AssignmentRepo: assignmentRepo,
		Dispatcher:     dispatcher,
	})
	trackingService := service.NewTrackingService(complaintRepo)
	directoryService := service.NewDirectoryService(lookupRepo)
	adminService := service.NewAdminService(complaintRepo)
	userAdminService := service.NewUserAdminService(userRepo, cfg.Auth.BcryptCost)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxSizeBytes) + 1024*1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	sessionMiddleware := auth.NewSessionMiddleware(sessions, cfg.Session.CookieName)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:              handlers.NewAuthHandler(authService, cfg.Session.CookieName, cfg.Session.TTL()),
		Public:            handlers.NewPublicHandler(intakeService, trackingService, directoryService),
		Staff:             handlers.NewStaffHandler(responseService),
		Admin:             handlers.NewAdminHandler(adminService, assignmentService),
		Users:             handlers.NewUsersHandler(userAdminService),
		Notifications:     handlers.NewNotificationsHandler(notificationService),
		SessionMiddleware: sessionMiddleware,
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
