// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"fitbuilder/internal/delivery/http/middleware"
	"fitbuilder/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PlanHandler    *handler.PlanHandler
	ScannerHandler *handler.ScannerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	planHandler    *handler.PlanHandler
	scannerHandler *handler.ScannerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		planHandler:    params.PlanHandler,
		scannerHandler: params.ScannerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Replace)
		profileGroup.POST("/onboarding", r.profileHandler.CompleteOnboarding)
		profileGroup.POST("/weight", r.profileHandler.AddWeight)
		profileGroup.PUT("/habits", r.profileHandler.UpdateHabits)
	}

	// Coaching capability routes
	planGroup := e.Group("/plans")
	planGroup.Use(r.authMiddleware.Authenticate)
	{
		planGroup.POST("/workout", r.planHandler.GenerateWorkout)
		planGroup.POST("/diet", r.planHandler.GenerateDiet)
	}

	scannerGroup := e.Group("/scanner")
	scannerGroup.Use(r.authMiddleware.Authenticate)
	{
		scannerGroup.POST("/analyze", r.scannerHandler.Analyze)
	}
}
