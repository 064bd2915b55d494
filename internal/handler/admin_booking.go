package handler

// Admin oversight of reservations and service contracts: listing with
// status filters and explicit status transitions (confirm, check-in,
// finalize, cancel...).  The transition tables in admin_common.go are
// the single source of truth for which moves are legal.

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/repository"
)

type statusReq struct {
	Status string `json:"status"`
}

// ListReservations handles GET /v1/admin/reservations with an
// optional ?status= filter.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	items, err := h.Reservations.List(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateReservationStatus handles PATCH
// /v1/admin/reservations/:id/status.  Illegal moves (leaving a
// terminal state, skipping check-in) yield a 422.
func (h *AdminHandler) UpdateReservationStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	target := strings.ToUpper(strings.TrimSpace(req.Status))
	if target == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status required"})
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
	if !reservationTransitions[rv.Status][target] {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": repository.ErrInvalidTransition.Error()})
	}
	rv.Status = target
	if err := h.Reservations.Save(ctx, rv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rv)
}

// ListContracts handles GET /v1/admin/service-contracts with an
// optional ?status= filter.
func (h *AdminHandler) ListContracts(c echo.Context) error {
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	items, err := h.Contracts.List(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateContractStatus handles PATCH
// /v1/admin/service-contracts/:id/status.
func (h *AdminHandler) UpdateContractStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	target := strings.ToUpper(strings.TrimSpace(req.Status))
	if target == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status required"})
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
	if !contractTransitions[ct.Status][target] {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": repository.ErrInvalidTransition.Error()})
	}
	ct.Status = target
	if err := h.Contracts.Save(ctx, ct); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, ct)
}
