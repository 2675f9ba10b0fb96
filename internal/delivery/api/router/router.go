// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ShopHandler     *handler.ShopHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	MediaHandler    *handler.MediaHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	shopHandler     *handler.ShopHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
	mediaHandler    *handler.MediaHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		shopHandler:     params.ShopHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		reviewHandler:   params.ReviewHandler,
		mediaHandler:    params.MediaHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	e.GET("/media/*", r.mediaHandler.Serve)

	// Catalog and reviews are readable anonymously; the policy table decides
	// per action, so the token is optional here.
	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	optionalAuth := r.authMiddleware.OptionalAuthenticate
	requireAuth := r.authMiddleware.Authenticate

	categories := apiV1.Group("/categories", optionalAuth)
	{
		categories.GET("", r.categoryHandler.List)
		categories.POST("", r.categoryHandler.Create)
		categories.GET("/:id", r.categoryHandler.Get)
		categories.PUT("/:id", r.categoryHandler.Replace)
		categories.PATCH("/:id", r.categoryHandler.Patch)
		categories.DELETE("/:id", r.categoryHandler.Delete)
	}

	shops := apiV1.Group("/shops", optionalAuth)
	{
		shops.GET("", r.shopHandler.List)
		shops.POST("", r.shopHandler.Create)
		shops.POST("/scan", r.shopHandler.Scan)
		shops.GET("/:id", r.shopHandler.Get)
		shops.PUT("/:id", r.shopHandler.Replace)
		shops.PATCH("/:id", r.shopHandler.Patch)
		shops.DELETE("/:id", r.shopHandler.Delete)
		shops.PUT("/:id/avatar", r.shopHandler.UploadAvatar)
		shops.GET("/:id/qr", r.shopHandler.QRCode)
	}

	products := apiV1.Group("/products", optionalAuth)
	{
		products.GET("", r.productHandler.List)
		products.POST("", r.productHandler.Create)
		products.GET("/:id", r.productHandler.Get)
		products.PUT("/:id", r.productHandler.Replace)
		products.PATCH("/:id", r.productHandler.Patch)
		products.DELETE("/:id", r.productHandler.Delete)
		products.PUT("/:id/image", r.productHandler.UploadImage)
	}

	reviews := apiV1.Group("/reviews", optionalAuth)
	{
		reviews.GET("", r.reviewHandler.List)
		reviews.POST("", r.reviewHandler.Create)
		reviews.GET("/:id", r.reviewHandler.Get)
		reviews.PUT("/:id", r.reviewHandler.Replace)
		reviews.PATCH("/:id", r.reviewHandler.Patch)
		reviews.DELETE("/:id", r.reviewHandler.Delete)
	}

	// Everything below requires an authenticated caller
	cart := apiV1.Group("/cart", requireAuth)
	{
		cart.GET("", r.cartHandler.List)
		cart.POST("", r.cartHandler.Add)
		cart.PATCH("/:id", r.cartHandler.Update)
		cart.DELETE("/:id", r.cartHandler.Remove)
	}

	orders := apiV1.Group("/orders", requireAuth)
	{
		orders.GET("", r.orderHandler.List)
		orders.POST("", r.orderHandler.Checkout)
		orders.GET("/:id", r.orderHandler.Get)
		orders.PUT("/:id", r.orderHandler.Replace)
		orders.PATCH("/:id", r.orderHandler.Patch)
		orders.DELETE("/:id", r.orderHandler.Delete)
		orders.POST("/:id/items", r.orderHandler.AddItem)
		orders.PATCH("/:id/items/:itemId", r.orderHandler.UpdateItem)
		orders.DELETE("/:id/items/:itemId", r.orderHandler.DeleteItem)
	}

	users := apiV1.Group("/users", requireAuth)
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/me", r.userHandler.GetMe)
		users.PATCH("/me", r.userHandler.UpdateMe)
	}
}
