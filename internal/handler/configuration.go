package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/repository"
)

// ConfigHandler exposes the admin-managed booking catalogs (theatre names
// and time-slot labels).
type ConfigHandler struct {
	Configs  *repository.ConfigRepo
	Activity *repository.ActivityRepo
	Log      *zap.Logger
}

func NewConfigHandler(cr *repository.ConfigRepo, act *repository.ActivityRepo, log *zap.Logger) *ConfigHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConfigHandler{Configs: cr, Activity: act, Log: log}
}

// GetCatalogs returns the current catalogs, falling back to the defaults
// when nothing was saved yet.
func (h *ConfigHandler) GetCatalogs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Configs.GetCatalogs(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, cat)
}

// UpdateCatalogs replaces both lists.  Admin only.  Removing an entry
// does not touch existing bookings; their literal labels stay as written.
func (h *ConfigHandler) UpdateCatalogs(c echo.Context) error {
	var cat model.Catalogs
	if err := c.Bind(&cat); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cat.Theatres = cleanList(cat.Theatres)
	cat.TimeSlots = cleanList(cat.TimeSlots)
	if len(cat.Theatres) == 0 || len(cat.TimeSlots) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theatres and timeSlots must be non-empty"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Configs.UpdateCatalogs(ctx, cat, userID(c)); err != nil {
		h.Log.Error("update catalogs failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "UPDATE", "configuration", "catalogs", ""); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, cat)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
