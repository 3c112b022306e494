package main

import (
	"log"

	"restaurant-menu-api/auth"
	"restaurant-menu-api/config"
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/metrics"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/profile"
	"restaurant-menu-api/repository"
	"restaurant-menu-api/routes"
	"restaurant-menu-api/tenant"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("database connected", zap.String("driver", cfg.DBDriver))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("Invalid token configuration", zap.Error(err))
	}

	users := repository.NewUserRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	menus := repository.NewMenuRepository(db, tenant.NewResolver(db, m))

	authService := auth.NewService(users, tokens, auth.NewHasher(cfg.BcryptCost))
	profiles := profile.NewService(users, restaurants)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger, m), middleware.CORS(cfg.CORSAllowedOrigin))

	routes.SetupRoutes(r, routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, profiles, logger),
		Menu:     handlers.NewMenuHandler(menus, logger),
		Health:   handlers.NewHealthHandler(db),
		Verifier: tokens,
		Gatherer: registry,
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
