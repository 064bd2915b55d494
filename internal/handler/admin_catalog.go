package handler

// Admin CRUD over the room catalog: categories, rooms and the service
// catalog.  Public reads live in public_browse.go; here the
// activeOnly filters are off so staff also see retired records.

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solhotel/backoffice/internal/model"
	"github.com/solhotel/backoffice/internal/repository"
)

type categoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    uint32 `json:"capacity"`
	PriceCents  uint32 `json:"price_cents"`
	IsActive    *bool  `json:"is_active"`
}

// CreateCategory handles POST /v1/admin/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and capacity required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat := &model.RoomCategory{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		PriceCents:  req.PriceCents,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.Categories.Create(ctx, cat); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create category"})
	}
	return c.JSON(http.StatusCreated, cat)
}

// ListAllCategories handles GET /v1/admin/categories, including
// inactive records.
func (h *AdminHandler) ListAllCategories(c echo.Context) error {
	cats, err := h.Categories.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cats})
}

// UpdateCategory handles PUT /v1/admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and capacity required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	cat.Name = req.Name
	cat.Description = req.Description
	cat.Capacity = req.Capacity
	cat.PriceCents = req.PriceCents
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.Categories.Update(ctx, cat); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, cat)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id.  Categories
// still referenced by rooms cannot be deleted.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	switch err := h.Categories.Delete(c.Request().Context(), id); err {
	case nil:
		return c.NoContent(http.StatusNoContent)
	case repository.ErrCategoryNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "category still has rooms"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}

type roomReq struct {
	CategoryID uint64 `json:"category_id"`
	Number     string `json:"number"`
	Floor      uint32 `json:"floor"`
	Notes      string `json:"notes"`
	IsActive   *bool  `json:"is_active"`
}

// CreateRoom handles POST /v1/admin/rooms.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CategoryID == 0 || req.Number == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_id and number required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Categories.GetByID(ctx, req.CategoryID); err != nil {
		if err == repository.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rm := &model.Room{
		CategoryID: req.CategoryID,
		Number:     req.Number,
		Floor:      req.Floor,
		Notes:      req.Notes,
		IsActive:   req.IsActive == nil || *req.IsActive,
	}
	if err := h.Rooms.Create(ctx, rm); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	return c.JSON(http.StatusCreated, rm)
}

// ListAllRooms handles GET /v1/admin/rooms, including inactive rooms.
func (h *AdminHandler) ListAllRooms(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context(), 0, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// UpdateRoom handles PUT /v1/admin/rooms/:id.
func (h *AdminHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CategoryID == 0 || req.Number == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category_id and number required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rm.CategoryID = req.CategoryID
	rm.Number = req.Number
	rm.Floor = req.Floor
	rm.Notes = req.Notes
	if req.IsActive != nil {
		rm.IsActive = *req.IsActive
	}
	if err := h.Rooms.Update(ctx, rm); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rm)
}

// DeleteRoom handles DELETE /v1/admin/rooms/:id.  Rooms with
// reservation history cannot be deleted, only deactivated.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	switch err := h.Rooms.Delete(c.Request().Context(), id); err {
	case nil:
		return c.NoContent(http.StatusNoContent)
	case repository.ErrRoomNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "room still has reservations"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}

type serviceReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  uint32 `json:"price_cents"`
	IsActive    *bool  `json:"is_active"`
}

// CreateService handles POST /v1/admin/services.
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.Services.Create(ctx, s); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "service name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create service"})
	}
	return c.JSON(http.StatusCreated, s)
}

// ListAllServices handles GET /v1/admin/services, including inactive
// records.
func (h *AdminHandler) ListAllServices(c echo.Context) error {
	services, err := h.Services.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": services})
}

// UpdateService handles PUT /v1/admin/services/:id.
func (h *AdminHandler) UpdateService(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Services.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrServiceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	s.Name = req.Name
	s.Description = req.Description
	s.PriceCents = req.PriceCents
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.Services.Update(ctx, s); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "service name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteService handles DELETE /v1/admin/services/:id.  Services with
// contract history cannot be deleted, only deactivated.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	switch err := h.Services.Delete(c.Request().Context(), id); err {
	case nil:
		return c.NoContent(http.StatusNoContent)
	case repository.ErrServiceNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "service still has contracts"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}
