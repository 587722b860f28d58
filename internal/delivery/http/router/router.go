// Package router contains routing setup for the HTTP delivery.
package router

import (
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/delivery/http/router/handler"
	"lifelink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	RequestHandler  *handler.RequestHandler
	DonationHandler *handler.DonationHandler
	ProfileHandler  *handler.ProfileHandler
	CommentHandler  *handler.CommentHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
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

	// Public endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/comments", r.params.CommentHandler.List)

	// Registration runs authenticated but before a profile exists
	authGroup := e.Group("/auth", auth.Authenticate)
	{
		authGroup.POST("/register", r.params.ProfileHandler.Register)
	}

	// Profile endpoints need only a verified identity
	profileGroup := e.Group("/profile", auth.Authenticate)
	{
		profileGroup.GET("", r.params.ProfileHandler.Get)
		profileGroup.PUT("", r.params.ProfileHandler.Update)
	}

	// Request browsing is open to any registered user
	requestGroup := e.Group("/requests", auth.Authenticate, auth.RequireProfile)
	{
		requestGroup.GET("", r.params.RequestHandler.List)
		requestGroup.GET("/:id", r.params.RequestHandler.Get)
		requestGroup.GET("/:id/qr", r.params.RequestHandler.GetQR)
	}

	// Donor-only operations
	donorOps := requestGroup.Group("", auth.RequireRole(entity.RoleDonor))
	{
		donorOps.POST("/:id/responses", r.params.DonationHandler.Submit)
		donorOps.PATCH("/:id/responses/:responseID", r.params.DonationHandler.Edit)
		donorOps.DELETE("/:id/responses/:responseID", r.params.DonationHandler.Cancel)
	}

	donorGroup := e.Group("/donor", auth.Authenticate, auth.RequireProfile, auth.RequireRole(entity.RoleDonor))
	{
		donorGroup.GET("/history", r.params.DonationHandler.History)
		donorGroup.GET("/eligibility", r.params.DonationHandler.Eligibility)
	}

	e.POST("/comments", r.params.CommentHandler.Post,
		auth.Authenticate, auth.RequireProfile, auth.RequireRole(entity.RoleDonor))

	// Hospital-only operations
	hospitalOps := requestGroup.Group("", auth.RequireRole(entity.RoleHospital))
	{
		hospitalOps.POST("", r.params.RequestHandler.Create)
		hospitalOps.PUT("/:id", r.params.RequestHandler.Update)
		hospitalOps.DELETE("/:id", r.params.RequestHandler.Delete)
		hospitalOps.PATCH("/:id/status", r.params.RequestHandler.SetStatus)
		hospitalOps.GET("/:id/responses", r.params.DonationHandler.ListResponses)
		hospitalOps.PATCH("/:id/responses/:responseID/donated", r.params.DonationHandler.MarkDonated)
	}

	hospitalGroup := e.Group("/hospital", auth.Authenticate, auth.RequireProfile, auth.RequireRole(entity.RoleHospital))
	{
		hospitalGroup.GET("/requests", r.params.RequestHandler.HospitalRequests)
		hospitalGroup.GET("/summary", r.params.RequestHandler.HospitalSummary)
	}

	e.GET("/admin/statistics", r.params.AdminHandler.Statistics,
		auth.Authenticate, auth.RequireProfile, auth.RequireRole(entity.RoleHospital))
}
