package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/handler"
	"github.com/solhotel/backoffice/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.
// All routes require a valid JWT with the CLIENTE role.  Customers
// book rooms and services, read their inbox and see their payments;
// ownership of each record is enforced inside the handlers.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CLIENTE"),
	)
	g.POST("/reservations", h.CreateReservation)
	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)
	g.DELETE("/reservations/:id", h.CancelReservation)

	g.POST("/service-contracts", h.CreateContract)
	g.GET("/service-contracts", h.ListContracts)
	g.DELETE("/service-contracts/:id", h.CancelContract)

	g.GET("/messages", h.ListMessages)
	g.PATCH("/messages/:id/read", h.MarkMessageRead)

	g.GET("/payments", h.ListPayments)
}
