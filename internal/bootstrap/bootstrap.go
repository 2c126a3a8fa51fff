package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/examdesk/internal/app/controllers"
	appMigrations "github.com/yigit/examdesk/internal/app/migrations"
	appRepos "github.com/yigit/examdesk/internal/app/repositories"
	appRoutes "github.com/yigit/examdesk/internal/app/routes"
	appServices "github.com/yigit/examdesk/internal/app/services"
	"github.com/yigit/examdesk/internal/config"
	"github.com/yigit/examdesk/internal/db"
	appMiddleware "github.com/yigit/examdesk/internal/middleware"
	pkgAuth "github.com/yigit/examdesk/internal/pkg/auth"
	"github.com/yigit/examdesk/internal/pkg/logger"
	"github.com/yigit/examdesk/internal/pkg/metrics"
	"github.com/yigit/examdesk/internal/pkg/pdf"
	"github.com/yigit/examdesk/internal/pkg/validation"
	"github.com/yigit/examdesk/internal/seed"
)

// DefaultConfigPath is read when no other path is given.
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	Hasher         pkgAuth.PasswordHasher
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	LoginLimiter   *appMiddleware.RateLimiter
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Format == "text",
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	if len(cfg.EnvOverrides) > 0 {
		lgr.Debug().Strs("variables", cfg.EnvOverrides).Msg("Configuration overridden from environment")
	}
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(cfg.GetPostgresConnectionString(), lgr).Up(); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// NewSeeder builds the startup seeder from configuration.
func NewSeeder(cfg *config.Config, repos *appRepos.Repositories, hasher pkgAuth.PasswordHasher, lgr zerolog.Logger) *seed.Seeder {
	return seed.NewSeeder(repos, hasher, seed.Admin{
		FullName: cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}, lgr)
}

// BuildDependencies initializes services, controllers and middleware on top of repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, hasher pkgAuth.PasswordHasher, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:  repos,
		Hasher: hasher,
		Logger: lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(repos, deps.JWTService, hasher, cfg.Convocation.MaxTableNumber, lgr)

	renderer := pdf.NewRenderer(cfg.Convocation.Institution, cfg.Convocation.Title)
	deps.Controllers = appRoutes.Controllers{
		Auth:    appControllers.NewAuthController(deps.Services.Auth, lgr),
		User:    appControllers.NewUserController(deps.Services.User),
		Catalog: appControllers.NewCatalogController(deps.Services.Catalog),
		Exam:    appControllers.NewExamController(deps.Services.Exam, deps.Services.Convocation, renderer, lgr),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Auth)
	deps.LoginLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.RegisterWithGin(); err != nil {
		deps.Logger.Fatal().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(deps.Logger))
	router.Use(metrics.GinMiddleware())
	if corsMiddleware := newCORS(cfg.Server.CORSOrigins); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.LoginLimiter)
	appRoutes.SetupSwagger(router)

	return router
}

func newCORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return nil
	}

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}
