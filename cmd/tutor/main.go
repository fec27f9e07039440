package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/piresc/passeio/internal/pkg/config"
	"github.com/piresc/passeio/internal/pkg/database"
	"github.com/piresc/passeio/internal/pkg/health"
	httpclient "github.com/piresc/passeio/internal/pkg/http"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/middleware"
	natspkg "github.com/piresc/passeio/internal/pkg/nats"
	nrpkg "github.com/piresc/passeio/internal/pkg/newrelic"
	"github.com/piresc/passeio/internal/pkg/observability"
	"github.com/piresc/passeio/internal/pkg/server"
	"github.com/piresc/passeio/services/tutor/gateway"
	"github.com/piresc/passeio/services/tutor/handler"
	httpHandler "github.com/piresc/passeio/services/tutor/handler/http"
	"github.com/piresc/passeio/services/tutor/repository"
	"github.com/piresc/passeio/services/tutor/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "tutor-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/tutor.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// PostgreSQL only backs the proposal log and is optional
	var postgresClient *database.PostgresClient
	if configs.Database.Host != "" {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
	} else {
		zapLogger.Warn("DB_HOST not set, proposal attempts will not be persisted")
	}

	// NATS is optional as well
	var natsClient *natspkg.Client
	var producer *natspkg.Producer
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		producer = natspkg.NewProducer(natsClient)
	} else {
		zapLogger.Warn("NATS_URL not set, proposal events will not be published")
	}

	// Marketplace API client
	backend := httpclient.NewClient(httpclient.Config{
		BaseURL:    configs.Backend.URL,
		Timeout:    configs.Backend.Timeout,
		MaxRetries: configs.Backend.MaxRetries,
	}, zapLogger)
	backend.SetObserver(observability.ObserveBackendCall)
	backend.Breakers().OnStateChange(func(name string, from, to circuitbreaker.State) {
		observability.SetCircuitBreakerOpen(name, to != circuitbreaker.StateClosed)
	})

	// Initialize repository
	var tutorRepo *repository.TutorRepo
	if postgresClient != nil {
		tutorRepo = repository.NewTutorRepository(configs, postgresClient.GetDB(), redisClient)
		if err := tutorRepo.EnsureSchema(ctx); err != nil {
			zapLogger.Fatal("Failed to prepare proposal log schema", zap.Error(err))
		}
	} else {
		tutorRepo = repository.NewTutorRepository(configs, nil, redisClient)
	}

	// Initialize Gateway
	tutorGW := gateway.NewTutorGW(backend, producer)

	// Initialize UseCase
	tutorUC := usecase.NewTutorUC(configs, tutorRepo, tutorGW)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(tutorUC)
	tutorHandler := httpHandler.NewTutorHandler(tutorUC)
	Handler := handler.NewHandler(authHandler, tutorHandler, tutorRepo, redisClient.GetClient(), configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(observability.EchoMiddleware())

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger, backend.Breakers())
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	if postgresClient != nil {
		healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	}
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewConnectionChecker(natsClient))
	}
	health.RegisterHealthEndpoints(e, appName, healthService)
	if configs.Metrics.Enabled {
		e.GET("/metrics", observability.Handler())
	}

	// Register service routes
	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	components := srv.Components()
	components.Register("redis", func(context.Context) error { return redisClient.Close() })
	if postgresClient != nil {
		components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	}
	if natsClient != nil {
		components.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	if nrApp != nil {
		components.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := srv.Start(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
	zapLogger.Info("Server stopped", zap.String("app", appName))
}
