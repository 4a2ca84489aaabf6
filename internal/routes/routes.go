package routes

import (
	"omnio_back_end/internal/commerce"
	"omnio_back_end/internal/handlers"
	"omnio_back_end/internal/middleware"
	"omnio_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes monte toute la surface HTTP sous /api
func RegisterRoutes(r *gin.Engine, s *store.Store) {
	carts := commerce.NewCartService(s)
	orders := commerce.NewOrderService(s)
	wishlists := commerce.NewWishlistService(s)

	authHandler := handlers.NewAuthHandler(s)
	cartHandler := handlers.NewCartHandler(carts)
	orderHandler := handlers.NewOrderHandler(orders)
	wishlistHandler := handlers.NewWishlistHandler(wishlists)
	productHandler := handlers.NewProductHandler(s)
	categoryHandler := handlers.NewCategoryHandler(s)
	pageHandler := handlers.NewPageHandler(s)

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), authHandler.Register)
		auth.POST("/login", middleware.LoginRateLimit(), authHandler.Login)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		auth.GET("/:provider", authHandler.BeginAuth)
		auth.GET("/:provider/callback", authHandler.CallbackAuth)
	}

	// Catalogue public
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/search", productHandler.SearchProducts)
	api.GET("/products/:slug", productHandler.GetProductBySlug)
	api.GET("/categories", categoryHandler.ListCategories)
	api.GET("/categories/:slug", categoryHandler.GetCategoryBySlug)
	api.GET("/homepage", pageHandler.GetHomepage)
	api.GET("/pages/:slug", pageHandler.GetPageBySlug)

	// Panier (utilisateur connecté)
	cart := api.Group("/carts", middleware.AuthRequired())
	{
		cart.GET("/me", cartHandler.GetMyCart)
		cart.POST("/me", cartHandler.CreateMyCart)
		cart.POST("/me/items", cartHandler.AddCartItem)
		cart.PUT("/me/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/me/items/:id", cartHandler.DeleteCartItem)
	}

	// Commandes
	order := api.Group("/orders", middleware.AuthRequired())
	{
		order.POST("/place", orderHandler.PlaceOrder)
		order.GET("/me", orderHandler.GetMyOrders)
		order.GET("/me/:id", orderHandler.GetOrderByID)
	}

	// Liste de souhaits
	wishlist := api.Group("/wishlist", middleware.AuthRequired())
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
	}

	// Administration du catalogue
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.POST("/products/:id/image", productHandler.UploadProductImage)
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.POST("/pages", pageHandler.CreatePage)
		admin.PUT("/pages/:id", pageHandler.UpdatePage)
	}
}
