package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/config"
	"github.com/sample-hr/employee-admin/internal/handler"
	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/middleware"
	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/session"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth          *handler.AuthHandler
	Administrator *handler.AdministratorHandler
	Employee      *handler.EmployeeHandler
	System        *handler.SystemHandler
}

// Deps are the shared collaborators the middleware chain needs.
type Deps struct {
	Sessions     session.Store
	Metrics      *metrics.Metrics
	LoginLimiter *middleware.RateLimiter
	Log          zerolog.Logger
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, deps Deps, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	if h := corsMiddleware(cfg); h != nil {
		router.Use(h)
	}

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.AccessLog(deps.Log, deps.Metrics))

	router.GET("/health", handlers.System.Health)
	router.GET("/metrics", handlers.System.Metrics)

	// ─── Session-aware routes ──────────────────────────────────────────
	app := router.Group("/")
	app.Use(middleware.LoadSession(deps.Sessions, deps.Log), middleware.NoStore())

	login := []gin.HandlerFunc{handlers.Auth.Login}
	if deps.LoginLimiter != nil {
		login = append([]gin.HandlerFunc{deps.LoginLimiter.Middleware()}, login...)
	}
	app.POST("/login", login...)
	app.POST("/logout", handlers.Auth.Logout)

	app.GET("/administrators/new", handlers.Administrator.New)
	app.GET("/employees", handlers.Employee.List)
	app.GET("/employees/:id", handlers.Employee.Detail)

	// ─── Authenticated ─────────────────────────────────────────────────
	admin := app.Group("/")
	admin.Use(middleware.RequireAdministrator())
	{
		admin.POST("/administrators", handlers.Administrator.Create)
		admin.GET("/employees/:id/edit", handlers.Employee.Edit)
		admin.POST("/employees/:id", handlers.Employee.Update)
		admin.PUT("/employees/:id", handlers.Employee.Update)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}

// corsMiddleware allows the configured origins with credentials, since the
// session rides on a cookie. With no origins configured every origin is
// reflected in debug mode only; otherwise cross-origin requests get no CORS
// headers and nil is returned.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	switch {
	case len(cfg.AllowedOrigins) > 0:
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	case cfg.GinMode == gin.DebugMode:
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	default:
		return nil
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig)
}
