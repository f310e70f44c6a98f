// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/config"
	"github.com/printcraft/store-backend/internal/handlers"
	"github.com/printcraft/store-backend/internal/middleware"
	"github.com/printcraft/store-backend/internal/services"
	"github.com/printcraft/store-backend/internal/utils"
)

// Initialize wires services, handlers and routes. redisClient may be
// nil, in which case carts live in process memory.
func Initialize(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	// Initialize services
	var cartStore services.CartStore
	if redisClient != nil {
		cartStore = services.NewRedisCartStore(redisClient, time.Duration(cfg.Store.CartTTLHours)*time.Hour)
	} else {
		cartStore = services.NewMemoryCartStore()
	}

	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)
	paymentService := services.NewPaymentService(cfg)

	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(cartStore, catalogService, cfg.Store)

	var paymentProvider services.PaymentProvider
	if paymentService.Configured() {
		paymentProvider = paymentService
	}
	orderService := services.NewOrderService(db, cartService, paymentProvider, notificationService, cfg.Store)

	reviewService := services.NewReviewService(db)
	inquiryService := services.NewInquiryService(db, notificationService)
	authService := services.NewAuthService(db, cfg.JWT.AccessTokenTTL)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(cartService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, reviewService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService, catalogService, orderService, reviewService, inquiryService, storageService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	sessionTTL := cfg.Store.CartTTLHours * 3600
	secureCookies := cfg.Environment == "production"

	// API routes
	api := r.Group("/api")
	{
		// Storefront catalog
		products := api.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/featured", catalogHandler.GetFeaturedProducts)
			products.GET("/latest", catalogHandler.GetLatestProducts)
			products.GET("/:slug", catalogHandler.GetProduct)
		}

		// Reviews hang off product IDs, not slugs, to survive renames.
		reviews := api.Group("/reviews/:id")
		{
			reviews.GET("", reviewHandler.GetProductReviews)
			reviews.POST("", middleware.SubmitRateLimit(), reviewHandler.SubmitReview)
		}

		api.GET("/categories", catalogHandler.GetCategories)

		// Cart, bound to the visitor session cookie
		cart := api.Group("/cart")
		cart.Use(middleware.Session(sessionTTL, secureCookies))
		{
			cart.GET("", cartHandler.GetCart)
			cart.GET("/count", cartHandler.GetCartCount)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Checkout and order tracking
		api.POST("/checkout", middleware.Session(sessionTTL, secureCookies), middleware.CheckoutRateLimit(), orderHandler.Checkout)
		api.GET("/orders/track", orderHandler.TrackOrder)

		// Contact form
		api.POST("/inquiries", middleware.SubmitRateLimit(), inquiryHandler.SubmitInquiry)

		// Payments
		payments := api.Group("/payments")
		{
			payments.POST("/webhook", paymentHandler.HandleWebhook)
			payments.GET("/status/:intentId", paymentHandler.GetPaymentStatus)
		}

		// Admin routes
		api.POST("/admin/login", middleware.AuthRateLimit(), authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired())
		admin.Use(middleware.AuditLogMiddleware(db))
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.POST("/change-password", authHandler.ChangePassword)

			adminProducts := admin.Group("/products")
			{
				adminProducts.GET("", adminHandler.GetProducts)
				adminProducts.GET("/:id", adminHandler.GetProduct)
				adminProducts.POST("", adminHandler.CreateProduct)
				adminProducts.PUT("/:id", adminHandler.UpdateProduct)
				adminProducts.DELETE("/:id", adminHandler.DeactivateProduct)
				adminProducts.POST("/images", adminHandler.UploadProductImage)
			}

			adminCategories := admin.Group("/categories")
			{
				adminCategories.GET("", adminHandler.GetCategories)
				adminCategories.POST("", adminHandler.CreateCategory)
				adminCategories.DELETE("/:id", adminHandler.DeleteCategory)
			}

			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("", adminHandler.GetOrders)
				adminOrders.GET("/:id", adminHandler.GetOrder)
				adminOrders.PUT("/:id/status", adminHandler.UpdateOrderStatus)
			}

			adminReviews := admin.Group("/reviews")
			{
				adminReviews.GET("/pending", adminHandler.GetPendingReviews)
				adminReviews.PUT("/:id/approve", adminHandler.ApproveReview)
				adminReviews.PUT("/:id/unapprove", adminHandler.UnapproveReview)
				adminReviews.DELETE("/:id", adminHandler.DeleteReview)
			}

			adminInquiries := admin.Group("/inquiries")
			{
				adminInquiries.GET("", adminHandler.GetInquiries)
				adminInquiries.PUT("/:id/read", adminHandler.MarkInquiryRead)
				adminInquiries.DELETE("/:id", adminHandler.DeleteInquiry)
			}

			adminSettings := admin.Group("/settings")
			{
				adminSettings.GET("", adminHandler.GetSettings)
				adminSettings.PUT("", adminHandler.UpdateSettings)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
