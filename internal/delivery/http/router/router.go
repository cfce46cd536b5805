// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/middleware"
	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/router/handler"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	RedirectHandler  *handler.RedirectHandler
	AuthHandler      *handler.AuthHandler
	WalletHandler    *handler.WalletHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AdminHandler     *handler.AdminHandler
	QuoteHandler     *handler.QuoteHandler
	GeocodeHandler   *handler.GeocodeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	// Public redirects, the service's hot path.
	e.GET("/r/:linkId", r.params.RedirectHandler.ResolveLink)
	e.GET("/k/:keychainIdentifier", r.params.RedirectHandler.ResolveKeychain)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Public quote endpoint for the motivazional subdomain.
	api.GET("/quote", r.params.QuoteHandler.RandomQuote)

	// Authenticated, no extra capability.
	api.GET("/geocode", r.params.GeocodeHandler.Geocode, auth.Authenticate)

	userGroup := api.Group("/user", auth.Authenticate)
	{
		userGroup.GET("/wallet", r.params.WalletHandler.Wallet,
			auth.RequireCapability(entity.CapabilityWallet))

		analyticsGate := auth.RequireCapability(entity.CapabilityAnalytics)
		userGroup.GET("/links", r.params.AnalyticsHandler.CompanyLinks, analyticsGate)
		userGroup.GET("/analytics/:linkId", r.params.AnalyticsHandler.LinkStats, analyticsGate)
		userGroup.GET("/heatmap/:linkId", r.params.AnalyticsHandler.Heatmap, analyticsGate)
		userGroup.GET("/geostats/:linkId", r.params.AnalyticsHandler.GeoStats, analyticsGate)
	}

	api.POST("/transactions/payment", r.params.WalletHandler.Payment,
		auth.Authenticate, auth.RequireCapability(entity.CapabilityPOS))

	adminGroup := api.Group("/admin", auth.Authenticate, auth.RequireAdmin)
	{
		adminGroup.POST("/users", r.params.AdminHandler.CreateUser)
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.DELETE("/users/:id", r.params.AdminHandler.DeleteUser)

		adminGroup.POST("/companies", r.params.AdminHandler.CreateCompany)
		adminGroup.GET("/companies", r.params.AdminHandler.ListCompanies)

		adminGroup.POST("/links", r.params.AdminHandler.CreateLink)
		adminGroup.GET("/links", r.params.AdminHandler.ListLinks)

		adminGroup.POST("/selectors", r.params.AdminHandler.CreateSelector)
		adminGroup.GET("/selectors", r.params.AdminHandler.ListSelectors)
		adminGroup.PUT("/selectors/:id", r.params.AdminHandler.UpdateSelector)

		adminGroup.POST("/keychains", r.params.AdminHandler.CreateKeychain)
		adminGroup.GET("/keychains", r.params.AdminHandler.ListKeychains)
		adminGroup.GET("/keychains/:id/qrcode", r.params.AdminHandler.KeychainQR)

		adminGroup.POST("/adjust-balance", r.params.AdminHandler.AdjustBalance)

		adminGroup.GET("/analytics/:linkId/summary", r.params.AdminHandler.AnalyticsSummary)
		adminGroup.GET("/analytics/:linkId/detail", r.params.AdminHandler.AnalyticsDetail)

		adminGroup.POST("/sync-phrases", r.params.AdminHandler.SyncPhrases)
	}
}
