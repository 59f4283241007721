// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/config"
	"github.com/visioncraft/visioncraft-backend/internal/handlers"
	"github.com/visioncraft/visioncraft-backend/internal/middleware"
	"github.com/visioncraft/visioncraft-backend/internal/services"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	artworkService := services.NewArtworkService(db)
	engagementService := services.NewEngagementService(db)
	cartService := services.NewCartService(db, cfg)
	orderService := services.NewOrderService(db, cfg, notificationService)
	paymentService := services.NewPaymentService(db, cfg)
	eventService := services.NewEventService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, storageService)
	artworkHandler := handlers.NewArtworkHandler(artworkService, engagementService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	eventHandler := handlers.NewEventHandler(eventService, engagementService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Locally stored uploads
	if cfg.AWS.AccessKeyID == "" {
		r.Static("/static", cfg.Upload.LocalDir)
	}

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog routes
		artworks := v1.Group("/artworks")
		{
			artworks.GET("", artworkHandler.List)
			artworks.GET("/liked", middleware.AuthRequired(), artworkHandler.ListLiked)
			artworks.GET("/mine", middleware.AuthRequired(), middleware.SellerRequired(), artworkHandler.ListMine)
			artworks.GET("/:id", middleware.OptionalAuth(), artworkHandler.Get)
			artworks.POST("/:id/like", middleware.AuthRequired(), artworkHandler.ToggleLike)

			// Seller routes
			seller := artworks.Group("")
			seller.Use(middleware.AuthRequired(), middleware.SellerRequired())
			{
				seller.POST("", artworkHandler.Create)
				seller.PUT("/:id", artworkHandler.Update)
				seller.DELETE("/:id", artworkHandler.Delete)
			}
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/upi-qr", orderHandler.UPIQR)
			orders.POST("/:id/payment-intent", orderHandler.CreatePaymentIntent)
			orders.POST("/:id/confirm-payment", orderHandler.ConfirmPayment)
		}

		// Event routes
		events := v1.Group("/events")
		{
			events.GET("", middleware.OptionalAuth(), eventHandler.List)
			events.GET("/:id", middleware.OptionalAuth(), eventHandler.Get)
			events.POST("/:id/rsvp", middleware.AuthRequired(), eventHandler.ToggleRSVP)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.POST("/avatar", middleware.UploadRateLimit(), userHandler.UploadAvatar)
			users.GET("/seller/analytics", middleware.SellerRequired(), userHandler.SellerAnalytics)
		}

		// Upload routes
		uploads := v1.Group("/uploads")
		uploads.Use(middleware.AuthRequired(), middleware.SellerRequired(), middleware.UploadRateLimit())
		{
			uploads.POST("/:category", userHandler.UploadFile)
		}
	}

	return r
}
