package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/myurcick/profkomlviv-sub000/docs" // swagger docs
	appControllers "github.com/myurcick/profkomlviv-sub000/internal/app/controllers"
	appMigrations "github.com/myurcick/profkomlviv-sub000/internal/app/migrations"
	appRepos "github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories/memory"
	appRoutes "github.com/myurcick/profkomlviv-sub000/internal/app/routes"
	appServices "github.com/myurcick/profkomlviv-sub000/internal/app/services"
	"github.com/myurcick/profkomlviv-sub000/internal/config"
	"github.com/myurcick/profkomlviv-sub000/internal/db"
	appMiddleware "github.com/myurcick/profkomlviv-sub000/internal/middleware"
	pkgAuth "github.com/myurcick/profkomlviv-sub000/internal/pkg/auth"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/filestorage"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/helpers"
	"github.com/myurcick/profkomlviv-sub000/internal/pkg/logger"
	"github.com/myurcick/profkomlviv-sub000/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	NewsService      appServices.NewsService
	TeamService      appServices.TeamService
	ProfService      appServices.ProfService
	UnitService      appServices.UnitService
	AuthController   *appControllers.AuthController
	NewsController   *appControllers.NewsController
	TeamController   *appControllers.TeamController
	ProfController   *appControllers.ProfController
	UnitController   *appControllers.UnitController
	UploadController *appControllers.UploadController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	FileStorage      filestorage.FileStorage
	Logger           zerolog.Logger
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

// SetupRepositories builds the repository set for the configured
// database driver. For postgres it connects, migrates and returns the
// pool; the memory driver needs neither and returns a nil pool.
func SetupRepositories(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *pgxpool.Pool, error) {
	if strings.ToLower(cfg.Database.Driver) == "memory" {
		lgr.Info().Msg("Using in-memory storage backend")
		return memory.NewRepositories(), nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return appRepos.NewRepositories(dbPool), dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	// Seed failures are logged but do not block startup.
	if err := seed.CreateDefaultData(context.Background(), repos, cfg); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	fileStorage, err := filestorage.NewLocalStorage(cfg.Uploads.StoragePath, cfg.PublicBaseURL()+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(repos.Admin, deps.JWTService)
	deps.NewsService = appServices.NewNewsService(repos.News)
	deps.TeamService = appServices.NewTeamService(repos.Team)
	deps.ProfService = appServices.NewProfService(repos.Prof)
	deps.UnitService = appServices.NewUnitService(repos.Unit)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.NewsController = appControllers.NewNewsController(deps.NewsService, deps.FileStorage)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService, deps.FileStorage)
	deps.ProfController = appControllers.NewProfController(deps.ProfService, deps.FileStorage)
	deps.UnitController = appControllers.NewUnitController(deps.UnitService, deps.FileStorage)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	// Stored uploads are served directly
	router.Static("/uploads", cfg.Uploads.StoragePath)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.NewsController,
		deps.TeamController,
		deps.ProfController,
		deps.UnitController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
