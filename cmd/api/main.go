package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/TargetKart/targetkart-backend/api/routes"
	"github.com/TargetKart/targetkart-backend/internal/config"
	"github.com/TargetKart/targetkart-backend/internal/handlers"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
	"github.com/TargetKart/targetkart-backend/internal/repositories/memory"
	mongorepo "github.com/TargetKart/targetkart-backend/internal/repositories/mongodb"
	"github.com/TargetKart/targetkart-backend/internal/services"
	"github.com/TargetKart/targetkart-backend/internal/utils"
	"github.com/TargetKart/targetkart-backend/pkg/delivery"
	"github.com/TargetKart/targetkart-backend/pkg/mongodb"
)

func main() {
	// Load .env file if present; absence falls back to real environment
	// variables
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stderrLogger := zerolog.New(os.Stderr)
		stderrLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.LogLevel)

	// An unset secret gets an ephemeral one so the server still starts;
	// sessions then do not survive a restart.
	if cfg.JWT.Secret == "" {
		secret, err := utils.GenerateRandomString(32)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to generate JWT secret")
		}
		cfg.JWT.Secret = secret
		logger.Warn().Msg("JWT secret not configured, generated an ephemeral one")
	}

	// Initialize repositories. Mock-data mode runs entirely in memory with
	// the seeded demo population; otherwise everything is MongoDB-backed.
	var (
		customerRepo repositories.CustomerRepository
		segmentRepo  repositories.SegmentRepository
		campaignRepo repositories.CampaignRepository
		logRepo      repositories.CommunicationLogRepository
		adminRepo    repositories.AdminUserRepository
	)

	if cfg.Data.UseMockData {
		logger.Info().Msg("using in-memory repositories with demo data")
		customerRepo = memory.NewCustomerRepository(memory.SeedCustomers())
		segmentRepo = memory.NewSegmentRepository(memory.SeedSegments())
		campaignRepo = memory.NewCampaignRepository(nil)
		logRepo = memory.NewCommunicationLogRepository()
		adminRepo = memory.NewAdminUserRepository(memory.SeedAdminUsers())
	} else {
		mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error().Err(err).Msg("error disconnecting from MongoDB")
			}
		}()

		db := mongoClient.Database(cfg.MongoDB.Database)
		customerRepo = mongorepo.NewCustomerRepository(db)
		segmentRepo = mongorepo.NewSegmentRepository(db)
		campaignRepo = mongorepo.NewCampaignRepository(db)
		logRepo = mongorepo.NewCommunicationLogRepository(db)
		adminRepo = mongorepo.NewAdminUserRepository(db)
	}

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	segmentService := services.NewSegmentService(segmentRepo, customerService)
	campaignService := services.NewCampaignService(campaignRepo, logRepo, delivery.NewSimulatedGateway(nil), nil)
	aiService := services.NewAIService(campaignService)
	authService := services.NewAuthService(adminRepo, cfg)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		CustomerHandler: handlers.NewCustomerHandler(customerService),
		SegmentHandler:  handlers.NewSegmentHandler(segmentService),
		CampaignHandler: handlers.NewCampaignHandler(campaignService),
		AIHandler:       handlers.NewAIHandler(aiService),
	}

	// Setup router
	router := routes.SetupRouter(cfg, logger, handlerDeps)

	// Start the server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exiting")
}

// newLogger builds the process logger at the configured level
func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(parsed).With().Timestamp().Logger()
}
