// Package server wires the Gin engine, middleware, and route map into
// an http.Server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userapp "github.com/recipehub/recipehub/internal/application/user"
	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/infrastructure/http/handlers"
	"github.com/recipehub/recipehub/internal/infrastructure/http/middleware"
	"github.com/recipehub/recipehub/internal/infrastructure/monitoring"
)

// Handlers groups every HTTP handler set the server routes to.
type Handlers struct {
	Auth      *handlers.AuthHandlers
	Recipes   *handlers.RecipeHandlers
	Pantry    *handlers.PantryHandlers
	Planner   *handlers.PlannerHandlers
	Shopping  *handlers.ShoppingHandlers
	Household *handlers.HouseholdHandlers
}

// Server is the HTTP front of the application.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the engine, installs middleware, and registers all routes.
func New(
	cfg *config.Config,
	h Handlers,
	userService *userapp.UserService,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.Server.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.Server.TrustedProxies)
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	if cfg.RateLimit.Enable {
		engine.Use(middleware.NewRateLimiter(cfg.RateLimit).Handler())
	}
	if cfg.Monitoring.EnableMetrics {
		engine.Use(metrics.Middleware())
		engine.GET(cfg.Monitoring.MetricsPath, metrics.Handler())
	}

	engine.GET(cfg.Monitoring.HealthCheckPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	registerRoutes(engine, h, userService)

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger.Named("server"),
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
	return srv
}

func registerRoutes(engine *gin.Engine, h Handlers, userService *userapp.UserService) {
	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.Recipes.List)
		recipes.GET("/:slug", h.Recipes.Get)
		recipes.POST("/match", h.Recipes.Match)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(userService))
	{
		authed.GET("/auth/me", h.Auth.Me)

		authed.POST("/recipes/:slug/favorite", h.Recipes.ToggleFavorite)
		authed.GET("/favorites", h.Recipes.ListFavorites)

		pantry := authed.Group("/pantry")
		{
			pantry.GET("", h.Pantry.List)
			pantry.POST("", h.Pantry.Add)
			pantry.PUT("/:id", h.Pantry.Update)
			pantry.DELETE("/:id", h.Pantry.Delete)
			pantry.POST("/bulk", h.Pantry.BulkAdd)
			pantry.GET("/summary", h.Pantry.Summary)
		}

		plan := authed.Group("/plan")
		{
			plan.GET("/:weekKey", h.Planner.GetWeek)
			plan.PUT("/:weekKey/entries", h.Planner.UpsertEntry)
			plan.DELETE("/:weekKey/entries/:day/:slot", h.Planner.DeleteEntry)
			plan.POST("/:weekKey/copy-previous", h.Planner.CopyPreviousWeek)
			plan.POST("/:weekKey/ai-fill", h.Planner.FillWithAI)
			plan.POST("/:weekKey/regenerate/:day/:slot", h.Planner.RegenerateSlot)
		}

		shopping := authed.Group("/shopping")
		{
			shopping.POST("/:weekKey/generate", h.Shopping.Generate)
			shopping.GET("/:weekKey", h.Shopping.GetForWeek)
			shopping.POST("/items/:id/toggle", h.Shopping.ToggleItem)
			shopping.PATCH("/items/:id", h.Shopping.UpdateItem)
			shopping.POST("/:weekKey/items", h.Shopping.AddManualItem)
			shopping.DELETE("/items/:id", h.Shopping.RemoveManualItem)
		}

		household := authed.Group("/household")
		{
			household.GET("", h.Household.Get)
			household.PUT("", h.Household.Upsert)
		}
	}
}

// Start begins serving. It blocks until the listener fails or is closed.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
