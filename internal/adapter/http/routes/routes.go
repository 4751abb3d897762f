package routes

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/felipecasali/iphoneshopping-sub000/docs" // generated swagger docs
	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/catalog"
	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/handlers"
	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/persistence/repository"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/pricing"
	"github.com/felipecasali/iphoneshopping-sub000/internal/infrastructure/database"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase"
)

var router = gin.New()

const defaultPort = 8080

// Run will start the server
func Run() {
	setupLogger()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	log.Info().Int("port", port).Msg("starting valuation service")
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	deviceCatalog := catalog.NewDefaultRegistry()
	evaluationRepo := repository.NewEvaluationDynamoRepository(ddb)

	calculator := pricing.NewCalculator(pricing.DefaultPolicy())
	evaluationUseCase := usecase.NewEvaluationUseCase(evaluationRepo, deviceCatalog, calculator, nil)
	reportUseCase := usecase.NewReportUseCase(pricing.NewReportEstimator())

	evaluationHandler := handlers.NewEvaluationHandler(evaluationUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addValuationRoutes(v1, evaluationHandler, reportHandler)
}

func setupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
