// Package http wires the middleware chain and the route table.
package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/config"
	"github.com/ignacioainol/Mern-Amazona/internal/http/cartcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/checkoutcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/handlers"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/sessioncookie"
)

func NewRouter(logger *slog.Logger, cfg config.Config, apiClient *api.Client) *gin.Engine {
	flashCodec := flash.NewCodec(cfg.CookieSecret, "flash", cfg.SecureCookies)
	carts := cartcookie.New(cfg.CookieSecret, "cart", cfg.SecureCookies)
	progress := checkoutcookie.New(cfg.CookieSecret, "checkout", cfg.SecureCookies)
	sessions := sessioncookie.New(cfg.CookieSecret, "session", cfg.SecureCookies, 30*24*time.Hour)

	catalog := handlers.NewCatalog(apiClient)
	cartH := handlers.NewCart(apiClient, carts, flashCodec)
	auth := handlers.NewAuth(apiClient, sessions, flashCodec)
	checkout := handlers.NewCheckout(apiClient, carts, progress, flashCodec)
	orders := handlers.NewOrders(apiClient)
	adminList := handlers.NewAdminProducts(apiClient, flashCodec)
	adminEdit := handlers.NewAdminProductEdit(apiClient, flashCodec)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.FlashMiddleware(flashCodec),
		middleware.Session(sessions),
		middleware.ErrorHandler(logger),
	)

	r.Static("/static", "./static")

	r.GET("/", catalog.Home)
	r.GET("/product/:slug", catalog.ProductDetail)

	r.GET("/cart", cartH.Show)
	r.POST("/cart/add", cartH.Add)
	r.POST("/cart/update", cartH.Update)
	r.POST("/cart/remove", cartH.Remove)

	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)

	authed := r.Group("/", middleware.RequireAuth(flashCodec))
	{
		authed.GET("/shipping", checkout.ShowShipping)
		authed.POST("/shipping", checkout.SaveShipping)
		authed.GET("/payment", checkout.ShowPayment)
		authed.POST("/payment", checkout.SavePayment)
		authed.GET("/placeorder", checkout.ShowPlaceOrder)
		authed.POST("/placeorder", checkout.PlaceOrder)
		authed.GET("/orders/:id", orders.Show)
	}

	admin := r.Group("/admin", middleware.RequireAdmin(flashCodec))
	{
		admin.GET("/products", adminList.List)
		admin.POST("/products/create", adminList.Create)
		admin.POST("/products/:id/delete", adminList.Delete)
		admin.GET("/products/:id", adminEdit.Show)
		admin.POST("/products/:id", adminEdit.Update)
		admin.POST("/products/:id/upload", adminEdit.Upload)
	}

	return r
}
