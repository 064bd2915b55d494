package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/model"
	"github.com/solhotel/backoffice/internal/repository"
)

// CustomerHandler groups repositories used by customer-scoped
// endpoints.  All methods assume JWT authentication and the CLIENTE
// role have already been validated by middleware; they still return
// 401 when the user ID cannot be extracted from the context.
type CustomerHandler struct {
	Reservations *repository.ReservationRepo
	Rooms        *repository.RoomRepo
	Categories   *repository.CategoryRepo
	Contracts    *repository.ContractRepo
	Services     *repository.ServiceRepo
	Payments     *repository.PaymentRepo
	Messages     *repository.MessageRepo
	Users        *repository.UserRepo
}

// NewCustomerHandler constructs a CustomerHandler.  All dependencies
// must be non-nil.
func NewCustomerHandler(
	reservations *repository.ReservationRepo,
	rooms *repository.RoomRepo,
	categories *repository.CategoryRepo,
	contracts *repository.ContractRepo,
	services *repository.ServiceRepo,
	payments *repository.PaymentRepo,
	messages *repository.MessageRepo,
	users *repository.UserRepo,
) *CustomerHandler {
	if reservations == nil || rooms == nil || categories == nil || contracts == nil ||
		services == nil || payments == nil || messages == nil || users == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{
		Reservations: reservations,
		Rooms:        rooms,
		Categories:   categories,
		Contracts:    contracts,
		Services:     services,
		Payments:     payments,
		Messages:     messages,
		Users:        users,
	}
}

type createReservationReq struct {
	RoomID uint64 `json:"room_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// CreateReservation books a room for the authenticated customer.  The
// stay starts PENDING; the total is derived from the category's
// nightly price times the number of nights.  The repository re-checks
// availability inside a transaction, so a concurrent booking for the
// same room and range yields a 409.
func (h *CustomerHandler) CreateReservation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id required"})
	}
	from, err := parseInstant(req.From)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from"})
	}
	to, err := parseInstant(req.To)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to"})
	}
	if !to.After(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be after from"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !rm.IsActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room not available"})
	}
	cat, err := h.Categories.GetByID(ctx, rm.CategoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	nights := int(to.Sub(from).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	rv := &model.Reservation{
		RoomID:     req.RoomID,
		CustomerID: customerID,
		StartsAt:   from,
		EndsAt:     to,
		Status:     model.ReservationPending,
		TotalCents: uint32(nights) * cat.PriceCents,
	}
	if err := h.Reservations.Create(ctx, rv); err != nil {
		if err == repository.ErrRoomUnavailable {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room unavailable for the requested dates"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}
	return c.JSON(http.StatusCreated, rv)
}

// ListReservations returns the authenticated customer's
// reservations, newest first.
func (h *CustomerHandler) ListReservations(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Reservations.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetReservation returns one of the customer's own reservations.
func (h *CustomerHandler) GetReservation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rv, err := h.Reservations.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if rv.CustomerID != customerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, rv)
}

// CancelReservation cancels one of the customer's own reservations.
// Only PENDING and CONFIRMED stays can be cancelled by the customer;
// anything past check-in is handled by staff.
func (h *CustomerHandler) CancelReservation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rv, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if rv.CustomerID != customerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if rv.Status != model.ReservationPending && rv.Status != model.ReservationConfirmed {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "reservation cannot be cancelled"})
	}
	rv.Status = model.ReservationCancelled
	if err := h.Reservations.Save(ctx, rv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rv)
}
