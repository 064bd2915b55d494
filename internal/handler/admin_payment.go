package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/model"
	"github.com/solhotel/backoffice/internal/repository"
)

type createPaymentReq struct {
	ReservationID *uint64 `json:"reservation_id"`
	ContractID    *uint64 `json:"contract_id"`
	AmountCents   uint32  `json:"amount_cents"`
	Method        string  `json:"method"`
	Paid          bool    `json:"paid"`
}

// CreatePayment handles POST /v1/admin/payments.  The payment must
// reference a reservation or a contract (or both); the customer is
// derived from the referenced record.  Contract payments are linked
// back onto the contract row.
func (h *AdminHandler) CreatePayment(c echo.Context) error {
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ReservationID == nil && req.ContractID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reservation_id or contract_id required"})
	}
	if req.AmountCents == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_cents required"})
	}
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = "CASH"
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var customerID uint64
	if req.ReservationID != nil {
		rv, err := h.Reservations.GetByID(ctx, *req.ReservationID)
		if err != nil {
			if err == repository.ErrReservationNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		customerID = rv.CustomerID
	}
	if req.ContractID != nil {
		ct, err := h.Contracts.GetByID(ctx, *req.ContractID)
		if err != nil {
			if err == repository.ErrContractNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "contract not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		customerID = ct.CustomerID
	}

	p := &model.Payment{
		CustomerID:    customerID,
		ReservationID: req.ReservationID,
		ContractID:    req.ContractID,
		AmountCents:   req.AmountCents,
		Method:        method,
		Status:        model.PaymentPending,
	}
	if req.Paid {
		now := time.Now().UTC()
		p.Status = model.PaymentPaid
		p.PaidAt = &now
	}
	if err := h.Payments.Create(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create payment"})
	}
	if req.ContractID != nil {
		if err := h.Contracts.SetPayment(ctx, *req.ContractID, p.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not link payment"})
		}
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPayments handles GET /v1/admin/payments.
func (h *AdminHandler) ListPayments(c echo.Context) error {
	items, err := h.Payments.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdatePaymentStatus handles PATCH /v1/admin/payments/:id/status
// (PENDING, PAID, REFUNDED).  Moving to PAID stamps paid_at.
func (h *AdminHandler) UpdatePaymentStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	target := strings.ToUpper(strings.TrimSpace(req.Status))
	switch target {
	case model.PaymentPending, model.PaymentPaid, model.PaymentRefunded:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Payments.UpdateStatus(ctx, id, target); err != nil {
		if err == repository.ErrPaymentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	p, err := h.Payments.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, p)
}
