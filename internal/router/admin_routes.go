package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/handler"
	"github.com/solhotel/backoffice/internal/middleware"
)

// RegisterAdmin registers the back-office endpoints under /v1/admin.
// All routes require a valid JWT with the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	g.POST("/categories", h.CreateCategory)
	g.GET("/categories", h.ListAllCategories)
	g.PUT("/categories/:id", h.UpdateCategory)
	g.DELETE("/categories/:id", h.DeleteCategory)

	g.POST("/rooms", h.CreateRoom)
	g.GET("/rooms", h.ListAllRooms)
	g.PUT("/rooms/:id", h.UpdateRoom)
	g.DELETE("/rooms/:id", h.DeleteRoom)

	g.POST("/services", h.CreateService)
	g.GET("/services", h.ListAllServices)
	g.PUT("/services/:id", h.UpdateService)
	g.DELETE("/services/:id", h.DeleteService)

	g.GET("/reservations", h.ListReservations)
	g.PATCH("/reservations/:id/status", h.UpdateReservationStatus)

	g.GET("/service-contracts", h.ListContracts)
	g.PATCH("/service-contracts/:id/status", h.UpdateContractStatus)

	g.POST("/payments", h.CreatePayment)
	g.GET("/payments", h.ListPayments)
	g.PATCH("/payments/:id/status", h.UpdatePaymentStatus)

	g.POST("/landing", h.CreateLandingSection)
	g.GET("/landing", h.ListLandingSections)
	g.PUT("/landing/:id", h.UpdateLandingSection)
	g.DELETE("/landing/:id", h.DeleteLandingSection)

	g.GET("/settings", h.ListSettings)
	g.GET("/settings/:key", h.GetSetting)
	g.PUT("/settings/:key", h.PutSetting)
}
