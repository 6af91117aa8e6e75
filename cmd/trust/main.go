package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/kerbshare/trustengine/internal/pkg/config"
	"github.com/kerbshare/trustengine/internal/pkg/database"
	"github.com/kerbshare/trustengine/internal/pkg/health"
	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/middleware"
	"github.com/kerbshare/trustengine/internal/pkg/nats"
	nrpkg "github.com/kerbshare/trustengine/internal/pkg/newrelic"
	"github.com/kerbshare/trustengine/internal/pkg/server"
	detectiongateway "github.com/kerbshare/trustengine/services/detection/gateway"
	detectionhandler "github.com/kerbshare/trustengine/services/detection/handler"
	detectionrepo "github.com/kerbshare/trustengine/services/detection/repository"
	detectionusecase "github.com/kerbshare/trustengine/services/detection/usecase"
	handoffgateway "github.com/kerbshare/trustengine/services/handoff/gateway"
	handoffhandler "github.com/kerbshare/trustengine/services/handoff/handler"
	handoffrepo "github.com/kerbshare/trustengine/services/handoff/repository"
	handoffusecase "github.com/kerbshare/trustengine/services/handoff/usecase"
)

func main() {
	appName := "trust-service"
	configPath := "config/trust.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, configs.NewRelic.LogsEnabled, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// PostgreSQL holds the booking event history the detectors scan
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Redis holds live handoff sessions
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NATS carries pattern and handoff trust events downstream
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Detection service wiring
	bookingRepo := detectionrepo.NewBookingRepository(configs, postgresClient.GetDB())
	detectionGW := detectiongateway.NewDetectionGateway(natsClient, zapLogger)
	detectionUC := detectionusecase.NewDetectionUsecase(configs, bookingRepo, detectionGW)
	detectionHandler := detectionhandler.NewHandler(detectionUC, configs)

	// Handoff service wiring
	sessionRepo := handoffrepo.NewSessionRepository(configs, redisClient)
	handoffGW := handoffgateway.NewHandoffGateway(configs, natsClient, zapLogger)
	handoffUC := handoffusecase.NewHandoffUsecase(configs, sessionRepo, handoffGW)
	handoffHandler := handoffhandler.NewHandler(handoffUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestLogger())

	health.RegisterHealthEndpoints(e, appName)

	detectionHandler.RegisterRoutes(e)
	handoffHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
