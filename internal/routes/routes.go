package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/handlers"
	"github.com/rkuznetsov/techstore-golang/internal/middleware"
)

// CORSMiddleware lets the browser frontend talk to us from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Answer the browser's preflight request directly.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint of the storefront API.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must run before everything else.
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Catalog (Public) ---
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProductByID)

		// --- Auth (Public) ---
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		// --- Coupons (Public) ---
		api.POST("/coupons/validate", h.ValidateCoupon)

		// --- Cart & Favorites (Public, keyed by user id) ---
		api.GET("/cart/:userId", h.GetCart)
		api.PUT("/cart/:userId", h.SyncCart)
		api.POST("/favorites", h.AddFavorite)
		api.DELETE("/favorites/:userId/:productId", h.DeleteFavorite)
		api.GET("/favorites/:userId", h.GetFavorites)
		api.GET("/favorites/ids/:userId", h.GetFavoriteIDs)

		// --- Orders & Payments (Public) ---
		api.POST("/orders", h.CreateOrder)
		api.POST("/create-payment-intent", h.CreatePaymentIntent)

		// --- Protected Routes (Login Required) ---
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware(h.Tokens))
		{
			auth.PUT("/users/:id", h.UpdateUser)
			auth.PUT("/users/:id/password", h.UpdatePassword)

			auth.POST("/cards", h.SaveCard)
			auth.GET("/cards/:userId", h.GetCards)
			auth.DELETE("/cards/:id", h.DeleteCard)
		}

		// --- Admin-Only Routes ---
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(h.Tokens))
		admin.Use(middleware.AdminMiddleware(h.DB))
		{
			admin.GET("/orders", h.GetAllOrders)
			admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		}
	}

	return router
}
