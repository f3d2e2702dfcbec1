package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/emrekaya/folio-gateway/docs" // Import generated swagger docs
	appControllers "github.com/emrekaya/folio-gateway/internal/app/controllers"
	appRoutes "github.com/emrekaya/folio-gateway/internal/app/routes"
	appServices "github.com/emrekaya/folio-gateway/internal/app/services"
	"github.com/emrekaya/folio-gateway/internal/config"
	appMiddleware "github.com/emrekaya/folio-gateway/internal/middleware"
	"github.com/emrekaya/folio-gateway/internal/pkg/logger"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Upstream            *upstream.Client
	AuthService         appServices.AuthService
	OrgService          appServices.OrgService
	PortfolioService    appServices.PortfolioService
	ExportService       *appServices.ExportService
	AuthController      *appControllers.AuthController
	OrgController       *appControllers.OrgController
	PortfolioController *appControllers.PortfolioController
	DashboardController *appControllers.DashboardController
	ExportController    *appControllers.ExportController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the upstream client, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Upstream = upstream.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout(), lgr)
	lgr.Info().Str("baseURL", cfg.Upstream.BaseURL).Msg("Upstream client configured")

	// Initialize services
	deps.AuthService = appServices.NewAuthService(deps.Upstream, lgr)
	deps.OrgService = appServices.NewOrgService(deps.Upstream, lgr)
	deps.PortfolioService = appServices.NewPortfolioService(deps.Upstream, lgr)
	deps.ExportService = appServices.NewExportService(deps.Upstream, cfg.Export.Institution, cfg.Export.Watermark, lgr)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.OrgController = appControllers.NewOrgController(deps.OrgService)
	deps.PortfolioController = appControllers.NewPortfolioController(deps.PortfolioService)
	deps.DashboardController = appControllers.NewDashboardController(deps.OrgService)
	deps.ExportController = appControllers.NewExportController(deps.PortfolioService, deps.ExportService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.OrgController,
		deps.PortfolioController,
		deps.DashboardController,
		deps.ExportController,
	)

	return router
}
