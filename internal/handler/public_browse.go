// Package handler exposes HTTP handlers for public, customer and
// admin endpoints.  This file defines the public browse API: guests
// can read the landing page, the room catalog and the service catalog
// without authentication.  Only active records are returned.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing.
type PublicHandler struct {
	Landing    *repository.LandingRepo
	Categories *repository.CategoryRepo
	Rooms      *repository.RoomRepo
	Services   *repository.ServiceRepo
}

func NewPublicHandler(l *repository.LandingRepo, cat *repository.CategoryRepo, rm *repository.RoomRepo, s *repository.ServiceRepo) *PublicHandler {
	return &PublicHandler{Landing: l, Categories: cat, Rooms: rm, Services: s}
}

// GetLanding returns the published landing sections ordered by position.
func (h *PublicHandler) GetLanding(c echo.Context) error {
	sections, err := h.Landing.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sections})
}

// ListCategories returns the active room categories.
func (h *PublicHandler) ListCategories(c echo.Context) error {
	cats, err := h.Categories.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cats})
}

// GetCategory returns one room category by id.
func (h *PublicHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cat, err := h.Categories.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cat)
}

// ListRooms returns active rooms, optionally filtered by
// ?category_id=.
func (h *PublicHandler) ListRooms(c echo.Context) error {
	var categoryID uint64
	if raw := c.QueryParam("category_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category_id"})
		}
		categoryID = n
	}
	rooms, err := h.Rooms.List(c.Request().Context(), categoryID, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// GetRoom returns one room by id.
func (h *PublicHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rm, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rm)
}

// AvailableRooms lists rooms free for the half-open range [from, to).
// A room is taken while any PENDING, CONFIRMED or CHECK_IN
// reservation overlaps the range.  Accepts RFC 3339 instants or bare
// dates (2006-01-02) in the from/to query parameters.
func (h *PublicHandler) AvailableRooms(c echo.Context) error {
	from, err := parseInstant(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from"})
	}
	to, err := parseInstant(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to"})
	}
	if !to.After(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be after from"})
	}
	rooms, err := h.Rooms.FindAvailable(c.Request().Context(), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// ListServices returns the active service catalog.
func (h *PublicHandler) ListServices(c echo.Context) error {
	services, err := h.Services.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": services})
}

// GetService returns one catalog service by id.
func (h *PublicHandler) GetService(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Services.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, s)
}

// parseInstant accepts an RFC 3339 timestamp or a bare date and
// returns the instant in UTC.
func parseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	return t.UTC(), err
}
