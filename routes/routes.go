package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mattys-media/backend/controllers"
	"github.com/mattys-media/backend/middleware"
)

// Register mounts all storefront routes under /api, plus the root health
// check used by liveness probes.
func Register(
	r *gin.Engine,
	productController *controllers.ProductController,
	authController *controllers.AuthController,
	cartController *controllers.CartController,
	resolver middleware.TokenResolver,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Mattty's Media API - Gen Z Print Shop"})
	})

	productRoutes := api.Group("/products")
	{
		productRoutes.GET("", productController.GetProducts)
		productRoutes.GET("/:id", productController.GetProduct)
		productRoutes.POST("/seed", productController.SeedProducts)
	}

	authRoutes := api.Group("/auth")
	authRoutes.Use(middleware.RateLimitMiddleware())
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
		authRoutes.GET("/me", middleware.AuthRequired(resolver), authController.Me)
	}

	cartRoutes := api.Group("/cart")
	cartRoutes.Use(middleware.AuthRequired(resolver))
	{
		cartRoutes.POST("", cartController.UpsertCart)
		cartRoutes.GET("", cartController.GetCart)
		cartRoutes.DELETE("", cartController.ClearCart)
	}

	api.POST("/checkout/whatsapp", middleware.AuthRequired(resolver), cartController.Checkout)
}
