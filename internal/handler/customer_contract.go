package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/model"
	"github.com/solhotel/backoffice/internal/repository"
)

type createContractReq struct {
	ServiceID     uint64  `json:"service_id"`
	ReservationID *uint64 `json:"reservation_id"`
	ScheduledAt   string  `json:"scheduled_at"`
}

// CreateContract books a catalog service for the authenticated
// customer.  The contract starts PENDING and is optionally attached
// to one of the customer's reservations.
func (h *CustomerHandler) CreateContract(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ServiceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id required"})
	}
	scheduledAt, err := parseInstant(req.ScheduledAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid scheduled_at"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	svc, err := h.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !svc.IsActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "service not available"})
	}
	if req.ReservationID != nil {
		rv, err := h.Reservations.GetByID(ctx, *req.ReservationID)
		if err != nil {
			if err == repository.ErrReservationNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if rv.CustomerID != customerID {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}

	ct := &model.ServiceContract{
		ServiceID:     req.ServiceID,
		CustomerID:    customerID,
		ReservationID: req.ReservationID,
		ScheduledAt:   scheduledAt,
		Status:        model.ContractPending,
	}
	if err := h.Contracts.Create(ctx, ct); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create contract"})
	}
	return c.JSON(http.StatusCreated, ct)
}

// ListContracts returns the authenticated customer's service
// contracts, newest first.
func (h *CustomerHandler) ListContracts(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Contracts.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CancelContract cancels one of the customer's own contracts.  Only
// PENDING and CONFIRMED contracts can be cancelled; COMPLETED and
// CANCELLED are terminal.
func (h *CustomerHandler) CancelContract(c echo.Context) error {
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

	ct, err := h.Contracts.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrContractNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contract not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if ct.CustomerID != customerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if ct.Status != model.ContractPending && ct.Status != model.ContractConfirmed {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "contract cannot be cancelled"})
	}
	ct.Status = model.ContractCancelled
	if err := h.Contracts.Save(ctx, ct); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, ct)
}
