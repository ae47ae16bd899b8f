package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/thrift-store-api/internal/api/http"
	"github.com/spec-kit/thrift-store-api/internal/api/http/handlers"
	"github.com/spec-kit/thrift-store-api/internal/auth"
	"github.com/spec-kit/thrift-store-api/internal/config"
	"github.com/spec-kit/thrift-store-api/internal/events"
	"github.com/spec-kit/thrift-store-api/internal/observability"
	"github.com/spec-kit/thrift-store-api/internal/persistence"
	"github.com/spec-kit/thrift-store-api/internal/repository"
	"github.com/spec-kit/thrift-store-api/internal/service"
	"github.com/spec-kit/thrift-store-api/internal/worker"
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

	var (
		userRepo         repository.UserRepository
		personaRepo      repository.PersonaRepository
		roleRepo         repository.RoleRepository
		registrationRepo repository.RegistrationRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		personaRepo = repository.NewPersonaRepository(pool)
		roleRepo = repository.NewRoleRepository(pool)
		registrationRepo = repository.NewRegistrationRepository(pool)
	} else {
		logger.Warn("running with in-memory storage; data is not persisted")
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		personaRepo = store.Personas()
		roleRepo = store.Roles()
		registrationRepo = store.Registrations()
	}

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:         userRepo,
		PersonaRepo:      personaRepo,
		RegistrationRepo: registrationRepo,
		Dispatcher:       dispatcher,
	})
	roleService := service.NewRoleService(roleRepo, redis, logger)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(authService),
		Personas:       handlers.NewPersonasHandler(authService),
		Roles:          handlers.NewRolesHandler(roleService),
		AuthMiddleware: authMiddleware,
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
