package routes

import (
	"context"
	"log"
	"os"

	_ "salle_attente/docs" // swag-generated OpenAPI registration
	"salle_attente/internal/adapter/http/handlers"
	"salle_attente/internal/adapter/http/middleware"
	repository2 "salle_attente/internal/adapter/persistence/repository"
	"salle_attente/internal/config"
	"salle_attente/internal/domain/catalog"
	"salle_attente/internal/infrastructure/clock"
	"salle_attente/internal/infrastructure/seed"
	"salle_attente/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires the application together and starts the server.
func Run() {
	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	setMiddlewares(cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config, logger zerolog.Logger) {
	patientRepo := repository2.NewPatientMemoryRepository()
	completionRepo := repository2.NewCompletionMemoryRepository()
	cat := catalog.Default()
	wallClock := clock.New()

	queueUseCase := usecase.NewQueueUseCase(patientRepo, completionRepo, wallClock, cat, logger)
	billingUseCase := usecase.NewBillingUseCase(completionRepo, cat)

	if cfg.SeedDemoData {
		if err := seed.Apply(context.Background(), patientRepo, logger); err != nil {
			logger.Error().Err(err).Msg("demo seed failed")
		}
	}

	// Header clock refresh, serialized with mutations by the queue lock.
	go queueUseCase.RunClockRefresh(context.Background(), cfg.ClockRefresh)

	patientHandler := handlers.NewPatientHandler(queueUseCase, cat)
	billingHandler := handlers.NewBillingHandler(billingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClinicRoutes(v1, patientHandler, billingHandler)
}

func setMiddlewares(cfg config.Config, logger zerolog.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
