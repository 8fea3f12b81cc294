package api

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/rvishnuram/orgdir/internal/app"
	"github.com/rvishnuram/orgdir/internal/handlers"
	"github.com/rvishnuram/orgdir/internal/middleware"
	"github.com/rvishnuram/orgdir/web"
)

// NewRouter builds the Gin engine, wires middleware and registers routes.
func NewRouter(db *gorm.DB, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	// Server-rendered pages
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/", handlers.Page("index.html"))
	r.GET("/organizations", handlers.Page("organizations.html"))
	r.GET("/users", handlers.Page("users.html"))

	// Health endpoint (public)
	if cfg.Monitoring.Health.Enabled {
		r.GET("/health", handlers.Health())
	}

	orgHandler, err := handlers.NewOrganizationHandler(db)
	if err != nil {
		return nil, err
	}
	userHandler, err := handlers.NewUserHandler(db)
	if err != nil {
		return nil, err
	}

	api := r.Group("/api")

	orgs := api.Group("/organizations")
	{
		orgs.GET("", orgHandler.List)
		orgs.GET("/search", orgHandler.Search)
		orgs.GET("/:id", orgHandler.Get)
		orgs.POST("", orgHandler.Create)
		orgs.PUT("/:id/status", orgHandler.UpdateStatus)
	}

	users := api.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/search", userHandler.Search)
		users.POST("", userHandler.Create)
	}

	// Metrics endpoint
	if cfg.Monitoring.Prometheus.Enabled {
		r.GET(cfg.Monitoring.Prometheus.Endpoint, gin.WrapH(promhttp.Handler()))
	}

	// NotFound fallback
	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
