package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "vaif_quotes/docs"
	"vaif_quotes/internal/adapter/http/handlers"
	"vaif_quotes/internal/adapter/persistence/repository"
	"vaif_quotes/internal/config"
	"vaif_quotes/internal/infrastructure/catalogfile"
	"vaif_quotes/internal/infrastructure/database"
	"vaif_quotes/internal/infrastructure/llm"
	"vaif_quotes/internal/infrastructure/logging"
	"vaif_quotes/internal/infrastructure/payments"
	"vaif_quotes/internal/usecase"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Quote   *handlers.QuoteHandler
	Payment *handlers.QuotePaymentHandler
	Catalog *handlers.CatalogHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(config.LogConfig{Level: "info"}).Fatal("[config] failed loading configuration", zap.Error(err))
	}

	logger := logging.New(cfg.Log)
	defer func() { _ = logger.Sync() }()
	gin.SetMode(cfg.HTTP.GinMode)

	h, err := NewHandlers(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("[routes] failed wiring dependencies", zap.Error(err))
	}

	router := NewRouter(h, logger)
	logger.Info("[routes] listening", zap.Int("port", cfg.HTTP.Port), zap.String("catalog_source", cfg.Catalog.Source), zap.Bool("llm_enabled", cfg.LLM.Enabled()))
	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		logger.Fatal("[routes] failed to startup the application", zap.Error(err))
	}
}

// NewRouter mounts middlewares, docs, metrics and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinMiddleware(logger))
	router.Use(logging.GinRecovery(logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addQuoteRoutes(v1, h.Quote, h.Payment)
	return router
}

// NewHandlers builds repositories, external clients and use cases from cfg.
// A missing language model or payment gateway is logged and the service still
// starts: estimates degrade to their fallbacks and deposits answer 503.
func NewHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, error) {
	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, fmt.Errorf("dynamodb client: %w", err)
	}

	catalogRepo, err := newCatalogRepository(cfg, ddb, logger)
	if err != nil {
		return Handlers{}, err
	}
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	paymentRepo := repository.NewQuotePaymentDynamoRepository(ddb, cfg.Tables.QuotePayments)

	var model interfaces.ILanguageModel
	if cfg.LLM.Enabled() {
		gemini, err := llm.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger)
		if err != nil {
			logger.Warn("[routes] language model not configured; using fallbacks", zap.Error(err))
		} else {
			model = gemini
		}
	} else {
		logger.Warn("[routes] GEMINI_API_KEY not set; analysis and refinement use fallbacks")
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.MockEnabled(), logger)
	if err != nil {
		logger.Warn("[routes] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	settings := usecase.LLMSettings{
		Timeout:     cfg.LLM.Timeout,
		Temperature: float32(cfg.LLM.Temperature),
		MaxTokens:   int32(cfg.LLM.MaxTokens),
	}
	deposit := usecase.DepositSettings{
		Rate:              decimal.NewFromFloat(cfg.Payments.DepositRate),
		MockMode:          cfg.Payments.MockEnabled(),
		SandboxPayerEmail: cfg.Payments.SandboxPayerEmail(),
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, logger)
	analyzerUseCase := usecase.NewAnalyzerUseCase(catalogUseCase, model, settings, logger)
	refinementUseCase := usecase.NewRefinementUseCase(model, settings, logger)
	estimationUseCase := usecase.NewEstimationUseCase(catalogUseCase, refinementUseCase, logger)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, estimationUseCase, logger)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, gateway, deposit, logger)

	return Handlers{
		Quote:   handlers.NewQuoteHandler(analyzerUseCase, estimationUseCase, quoteUseCase, logger),
		Payment: handlers.NewQuotePaymentHandler(paymentUseCase, cfg.Payments.MockEnabled(), logger),
		Catalog: handlers.NewCatalogHandler(catalogUseCase, logger),
	}, nil
}

// newCatalogRepository serves the catalog from DynamoDB behind an LRU cache, or
// from the YAML file when CATALOG_SOURCE=file.
func newCatalogRepository(cfg *config.Config, ddb *dynamodb.Client, logger *zap.Logger) (interfaces.ICatalogRepository, error) {
	if cfg.Catalog.Source == config.CatalogSourceFile {
		c, err := catalogfile.Load(cfg.Catalog.File)
		if err != nil {
			return nil, fmt.Errorf("catalog file: %w", err)
		}
		logger.Info("[routes] catalog loaded from file",
			zap.String("file", cfg.Catalog.File),
			zap.Int("project_types", len(c.ProjectTypes)),
			zap.Int("features", len(c.Features)))
		return repository.NewCatalogMemoryRepository(c), nil
	}

	return repository.NewCachedCatalogRepository(
		repository.NewCatalogDynamoRepository(ddb, cfg.Tables.Catalog),
		cfg.Catalog.CacheSize,
		cfg.Catalog.CacheTTL,
	), nil
}
