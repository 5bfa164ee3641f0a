// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	catalogapp "github.com/recipehub/recipehub/internal/application/catalog"
	householdapp "github.com/recipehub/recipehub/internal/application/household"
	pantryapp "github.com/recipehub/recipehub/internal/application/pantry"
	plannerapp "github.com/recipehub/recipehub/internal/application/planner"
	shoppingapp "github.com/recipehub/recipehub/internal/application/shopping"
	userapp "github.com/recipehub/recipehub/internal/application/user"
	"github.com/recipehub/recipehub/internal/infrastructure/ai/groq"
	"github.com/recipehub/recipehub/internal/infrastructure/catalog"
	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/infrastructure/http/handlers"
	"github.com/recipehub/recipehub/internal/infrastructure/http/server"
	"github.com/recipehub/recipehub/internal/infrastructure/monitoring"
	gormRepo "github.com/recipehub/recipehub/internal/infrastructure/persistence/gorm"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/memory"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/postgres"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/redis"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/sqlite"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/logger"
)

// Module provides all dependency injection modules.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	CatalogModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration.
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging.
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM connection for the configured driver.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			db, err := postgres.Connect(cfg, log)
			if err != nil {
				return nil, err
			}
			if cfg.Database.AutoMigrate {
				if err := gormRepo.Migrate(db); err != nil {
					return nil, err
				}
			}
			log.Info("connected to PostgreSQL database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)
			return db, nil
		case "sqlite", "":
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
			db, err := sqlite.SetupDatabase(cfg.Database.SQLitePath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("failed to seed database", zap.Error(err))
			}
			log.Info("connected to SQLite database",
				zap.String("path", cfg.Database.SQLitePath),
			)
			return db, nil
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}
	},
)

// CacheModule provides the session cache. Redis is used when reachable,
// otherwise the in-memory cache keeps the app usable in development.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		cache, err := redis.NewCacheRepository(cfg, log)
		if err != nil {
			log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
			return memory.NewCacheRepository()
		}
		log.Info("connected to redis cache", zap.String("addr", cfg.RedisAddr()))
		return cache
	},
)

// CatalogModule provides the embedded recipe catalog.
var CatalogModule = fx.Provide(
	fx.Annotate(
		catalog.NewStore,
		fx.As(new(outbound.RecipeCatalog)),
	),
)

// RepositoryModule provides repository implementations.
var RepositoryModule = fx.Provide(
	gormRepo.NewUserRepository,
	gormRepo.NewHouseholdRepository,
	gormRepo.NewPantryRepository,
	gormRepo.NewMealPlanRepository,
	gormRepo.NewShoppingListRepository,
	gormRepo.NewAIRunRepository,
)

// ServiceModule provides application services.
var ServiceModule = fx.Provide(
	fx.Annotate(
		groq.NewClient,
		fx.As(new(outbound.AIService)),
	),

	func(
		userRepo outbound.UserRepository,
		recipeCatalog outbound.RecipeCatalog,
		cache outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) *userapp.UserService {
		jwtSecret := cfg.Auth.JWTSecret
		if jwtSecret == "" {
			jwtSecret = "demo-secret-key"
		}
		return userapp.NewUserService(userRepo, recipeCatalog, cache, jwtSecret, cfg.Auth.JWTExpiration, log)
	},
	func(svc *userapp.UserService) inbound.UserService { return svc },

	catalogapp.NewCatalogService,
	pantryapp.NewPantryService,
	householdapp.NewHouseholdService,
	plannerapp.NewPlannerService,
	shoppingapp.NewShoppingService,
)

// HTTPModule provides the HTTP handlers and server.
var HTTPModule = fx.Provide(
	handlers.NewAuthHandlers,
	handlers.NewRecipeHandlers,
	handlers.NewPantryHandlers,
	handlers.NewPlannerHandlers,
	handlers.NewShoppingHandlers,
	handlers.NewHouseholdHandlers,
	monitoring.NewMetrics,

	func(
		auth *handlers.AuthHandlers,
		recipes *handlers.RecipeHandlers,
		pantry *handlers.PantryHandlers,
		planner *handlers.PlannerHandlers,
		shopping *handlers.ShoppingHandlers,
		household *handlers.HouseholdHandlers,
	) server.Handlers {
		return server.Handlers{
			Auth:      auth,
			Recipes:   recipes,
			Pantry:    pantry,
			Planner:   planner,
			Shopping:  shopping,
			Household: household,
		}
	},

	server.New,
)

// LifecycleModule registers application lifecycle hooks.
var LifecycleModule = fx.Invoke(RegisterLifecycleHooks)

// RegisterLifecycleHooks starts and stops the HTTP server with the app.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)
			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("failed to start HTTP server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down application")
			if err := srv.Shutdown(ctx); err != nil {
				log.Error("failed to shutdown HTTP server", zap.Error(err))
			}
			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("failed to close database connection", zap.Error(err))
				}
			}
			_ = log.Sync()
			return nil
		},
	})
}
