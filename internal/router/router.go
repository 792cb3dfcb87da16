// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/okaimono/shotengai-backend/internal/config"
	"github.com/okaimono/shotengai-backend/internal/handlers"
	"github.com/okaimono/shotengai-backend/internal/middleware"
	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/session"
)

// Off-catalog items that shopkeepers sell on the counter. They live only in
// the cart, never in the products table.
var counterSpecials = []models.AdHocLineItem{
	{
		Key:   "omakase-yakiniku",
		Name:  "【特別】店長おまかせ焼肉セット（4人前）",
		Price: 5000,
	},
}

func Initialize(db *gorm.DB, store session.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db)
	eventService := services.NewEventService(db)
	cartService := services.NewCartService(store, catalogService, counterSpecials)
	checkoutService := services.NewCheckoutService(catalogService, orderService, store, cfg.Checkout)
	consultService := services.NewConsultService(catalogService)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, eventService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	eventHandler := handlers.NewEventHandler(eventService)
	consultHandler := handlers.NewConsultHandler(consultService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.VisitorSession(cfg.Session))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		v1.GET("/streets", catalogHandler.GetStreets)
		v1.GET("/shops", catalogHandler.GetShops)
		v1.GET("/shops/:id", catalogHandler.GetShop)
		v1.GET("/products", catalogHandler.GetProducts)
		v1.GET("/products/:id", catalogHandler.GetProduct)
		v1.DELETE("/products/:id", catalogHandler.DeleteProduct)
		v1.GET("/sets", catalogHandler.GetSets)
		v1.GET("/sets/:slug", catalogHandler.GetSet)
		v1.GET("/home", catalogHandler.GetHome)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.ViewCart)
			cart.POST("/items/:key", cartHandler.AddItem)
			cart.DELETE("/items/:key", cartHandler.RemoveItem)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.CheckoutRateLimit())
		{
			checkout.POST("/products/:id", checkoutHandler.CheckoutProduct)
			checkout.POST("/sets/:slug", checkoutHandler.CheckoutSet)
			checkout.POST("/orders/:id/success", checkoutHandler.FinalizeOrder(models.OrderStatusSuccess))
			checkout.POST("/orders/:id/cancel", checkoutHandler.FinalizeOrder(models.OrderStatusCancel))
			checkout.POST("/batch/success", checkoutHandler.FinalizeBatch(models.OrderStatusSuccess))
			checkout.POST("/batch/cancel", checkoutHandler.FinalizeBatch(models.OrderStatusCancel))
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Event routes
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.GetEvents)
			events.GET("/:slug", eventHandler.GetEvent)
			events.POST("", eventHandler.CreateEvent)
		}

		// Consult routes
		consult := v1.Group("/consult")
		{
			consult.GET("/presets", consultHandler.GetPresets)
			consult.GET("/presets/:key", consultHandler.ResolvePreset)
			consult.POST("/compose", consultHandler.ComposeMessage)
		}
	}

	return r
}
