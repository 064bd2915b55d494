// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/handler"
	"github.com/solhotel/backoffice/internal/middleware"
)

// RegisterRoutes registers routes that carry no authentication and no
// caching: currently only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.
// Unauthenticated operations live under /v1/auth; /v1/me requires a
// valid access token with any known role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a bearer token or a refresh_token body, so
	// it is registered outside the JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "CLIENTE"),
	)
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints.  The
// extra middleware (response cache, rate limiting) applies only to
// this group; authenticated surfaces always hit the database.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/landing", p.GetLanding)
	g.GET("/categories", p.ListCategories)
	g.GET("/categories/:id", p.GetCategory)
	// /rooms/available must be registered before /rooms/:id so the
	// literal segment wins over the parameter.
	g.GET("/rooms/available", p.AvailableRooms)
	g.GET("/rooms", p.ListRooms)
	g.GET("/rooms/:id", p.GetRoom)
	g.GET("/services", p.ListServices)
	g.GET("/services/:id", p.GetService)
}
