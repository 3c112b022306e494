package routes

import (
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Menu     *handlers.MenuHandler
	Health   *handlers.HealthHandler
	Verifier middleware.TokenVerifier
	Gatherer prometheus.Gatherer
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	// ── Operational ────────────────────────────────────────────────
	r.GET("/health", h.Health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))

	// ── Auth ───────────────────────────────────────────────────────
	r.POST("/login", h.Auth.Login)
	r.POST("/register", h.Auth.Register)

	// ── Menus (one table per restaurant) ──────────────────────────
	menu := "/menu_:" + handlers.RestaurantParam
	r.GET(menu, h.Menu.ListItems)
	r.POST(menu, h.Menu.AddItem)
	r.GET(menu+"/category", h.Menu.ListCategories)

	// ── Authenticated routes ───────────────────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(h.Verifier))
	{
		api.GET("/profile", h.Auth.GetProfile)
	}
}
