package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattys-media/backend/cache"
	"github.com/mattys-media/backend/controllers"
	"github.com/mattys-media/backend/database"
	"github.com/mattys-media/backend/middleware"
	"github.com/mattys-media/backend/repository"
	"github.com/mattys-media/backend/routes"
	"github.com/mattys-media/backend/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		// Logger is not up yet; fall back to a bare production logger
		// just to report the config failure.
		logger, _ := zap.NewProduction()
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// --- Storage ---

	mongoDB, err := database.Connect(context.Background(), cfg.MongoURL, cfg.DBName)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := mongoDB.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	var productCache *cache.ProductCache
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, product cache disabled", zap.Error(err))
		} else {
			productCache = cache.NewProductCache(redisClient, logger)
			defer redisClient.Close()
		}
	}

	// --- Wiring ---

	productRepo := repository.NewProductRepository(mongoDB.DB)
	userRepo := repository.NewUserRepository(mongoDB.DB)
	cartRepo := repository.NewCartRepository(mongoDB.DB)

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo)

	productController := controllers.NewProductController(productService, productCache)
	authController := controllers.NewAuthController(authService)
	cartController := controllers.NewCartController(cartService)

	// --- HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CorsOrigins) == 1 && cfg.CorsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.CorsOrigins
	}
	r.Use(cors.New(corsConfig))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, productController, authController, cartController, authService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Storefront backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := mongoDB.Close(); err != nil {
		logger.Error("Failed to close MongoDB", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
