// Package router registers the storefront and back-office routes.
package router

import (
	"biaresh/internal/delivery/api/middleware"
	"biaresh/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	AdminHandler    *handler.AdminHandler
	AdminGuard      *middleware.AdminGuard
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	adminHandler    *handler.AdminHandler
	adminGuard      *middleware.AdminGuard
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		adminHandler:    params.AdminHandler,
		adminGuard:      params.AdminGuard,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	{
		apiV1.GET("/categories", r.catalogHandler.ListCategories)
		apiV1.POST("/checkout", r.checkoutHandler.PlaceOrder)
		apiV1.POST("/contact", r.checkoutHandler.SubmitContact)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/featured", r.catalogHandler.ListFeatured)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.GET("/:id/related", r.catalogHandler.ListRelated)
		productsGroup.GET("/:id/qr", r.catalogHandler.GetProductQR)
	}

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:lineId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:lineId", r.cartHandler.RemoveItem)
		cartGroup.GET("/drawer", r.cartHandler.GetDrawer)
		cartGroup.PUT("/drawer", r.cartHandler.SetDrawer)
	}

	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", r.adminHandler.Login)
		adminGroup.POST("/logout", r.adminHandler.Logout)
		adminGroup.GET("/session", r.adminHandler.Session)
	}

	// Everything below requires a logged-in admin
	adminAPI := adminGroup.Group("/api")
	adminAPI.Use(r.adminGuard.RequireSession)
	{
		adminAPI.GET("/dashboard", r.adminHandler.Dashboard)

		adminAPI.GET("/products", r.adminHandler.ListProducts)
		adminAPI.POST("/products", r.adminHandler.CreateProduct)
		adminAPI.GET("/products/:id", r.adminHandler.GetProduct)
		adminAPI.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminAPI.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		adminAPI.GET("/orders", r.adminHandler.ListOrders)
		adminAPI.GET("/orders/:id", r.adminHandler.GetOrder)
		adminAPI.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminAPI.DELETE("/orders/:id", r.adminHandler.DeleteOrder)

		adminAPI.GET("/messages", r.adminHandler.ListMessages)
		adminAPI.GET("/messages/:id", r.adminHandler.GetMessage)
		adminAPI.PUT("/messages/:id/read", r.adminHandler.MarkMessageRead)
		adminAPI.PUT("/messages/:id/unread", r.adminHandler.MarkMessageUnread)
		adminAPI.DELETE("/messages/:id", r.adminHandler.DeleteMessage)
	}
}
