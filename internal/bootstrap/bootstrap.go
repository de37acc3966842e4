package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danandika/mhs-api/internal/app/controllers"
	"github.com/danandika/mhs-api/internal/app/repositories"
	"github.com/danandika/mhs-api/internal/app/routes"
	"github.com/danandika/mhs-api/internal/app/services"
	"github.com/danandika/mhs-api/internal/config"
	"github.com/danandika/mhs-api/internal/db"
	"github.com/danandika/mhs-api/internal/middleware"
	"github.com/danandika/mhs-api/internal/pkg/auth"
	"github.com/danandika/mhs-api/internal/pkg/logger"
)

// Dependencies holds everything one worker needs to serve requests. It is
// constructed once per worker at startup and passed explicitly; nothing in
// it is ambient global state.
type Dependencies struct {
	StudentRepository *repositories.StudentRepository
	StudentService    services.StudentService
	StudentController *controllers.StudentController
	HomeController    *controllers.HomeController
	JWTService        *auth.JWTService
	AuthMiddleware    *middleware.AuthMiddleware
	Logger            zerolog.Logger
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

// BuildDependencies wires repositories, services, controllers and middleware
// for one worker.
func BuildDependencies(cfg *config.Config, database *db.Mongo, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.StudentRepository = repositories.NewStudentRepository(database.Collection())

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		Expiration:  cfg.JWTExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.StudentService = services.NewStudentService(deps.StudentRepository, deps.JWTService)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)
	deps.StudentController = controllers.NewStudentController(deps.StudentService)
	deps.HomeController = controllers.NewHomeController()

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	// HTML views for the home and about pages
	templatesGlob := filepath.Join("web", "templates", "*.html")
	if matches, err := filepath.Glob(templatesGlob); err == nil && len(matches) > 0 {
		router.LoadHTMLGlob(templatesGlob)
	} else {
		lgr.Warn().Str("glob", templatesGlob).Msg("No HTML templates found, page routes will fail to render")
	}

	routes.SetupSwagger(router)
	routes.SetupRouter(router, deps.HomeController, deps.StudentController, deps.AuthMiddleware)

	return router
}
