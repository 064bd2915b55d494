package handler

// Settings are plain key/value rows.  The notification templates
// (MSG_RESERVA_AUTO_CHECKOUT, MSG_SERVICE_COMPLETADO) live here; the
// background jobs pick up edits on their next run without a restart.

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type settingReq struct {
	Value string `json:"value"`
}

// ListSettings handles GET /v1/admin/settings.
func (h *AdminHandler) ListSettings(c echo.Context) error {
	items, err := h.Settings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetSetting handles GET /v1/admin/settings/:key.
func (h *AdminHandler) GetSetting(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "key required"})
	}
	s, err := h.Settings.Get(c.Request().Context(), key)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "setting not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, s)
}

// PutSetting handles PUT /v1/admin/settings/:key, inserting or
// replacing the value.
func (h *AdminHandler) PutSetting(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "key required"})
	}
	var req settingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Settings.Upsert(ctx, key, req.Value); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	s, err := h.Settings.Get(ctx, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, s)
}
