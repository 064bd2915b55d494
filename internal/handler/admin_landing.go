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

type landingReq struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
	Position uint32 `json:"position"`
	IsActive *bool  `json:"is_active"`
}

// CreateLandingSection handles POST /v1/admin/landing.
func (h *AdminHandler) CreateLandingSection(c echo.Context) error {
	var req landingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug and title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.LandingSection{
		Slug:     slug,
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Position: req.Position,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := h.Landing.Create(ctx, s); err != nil {
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create section"})
	}
	return c.JSON(http.StatusCreated, s)
}

// ListLandingSections handles GET /v1/admin/landing, including
// unpublished sections.
func (h *AdminHandler) ListLandingSections(c echo.Context) error {
	sections, err := h.Landing.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sections})
}

// UpdateLandingSection handles PUT /v1/admin/landing/:id.
func (h *AdminHandler) UpdateLandingSection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req landingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug and title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.LandingSection{
		ID:       id,
		Slug:     slug,
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Position: req.Position,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := h.Landing.Update(ctx, s); err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		if isDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteLandingSection handles DELETE /v1/admin/landing/:id.
func (h *AdminHandler) DeleteLandingSection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Landing.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
