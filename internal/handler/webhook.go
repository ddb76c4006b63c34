package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/repository"
)

// WebhookHandler receives callbacks from the external calendar
// integration.  The integration acknowledges mirrored events with its own
// event id, or tells us an event was removed on the calendar side.
type WebhookHandler struct {
	CalendarRepo *repository.CalendarRepo
	Log          *zap.Logger
}

func NewWebhookHandler(cal *repository.CalendarRepo, log *zap.Logger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{CalendarRepo: cal, Log: log}
}

type calendarWebhookReq struct {
	Action    string `json:"action"`
	BookingID string `json:"bookingId"`
	EventID   string `json:"eventId"`
}

// Calendar handles an update or delete callback for one booking's
// mirrored event.
func (h *WebhookHandler) Calendar(c echo.Context) error {
	var req calendarWebhookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BookingID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookingId is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	switch strings.ToLower(req.Action) {
	case "update":
		if req.EventID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "eventId is required for update"})
		}
		ev, err := h.CalendarRepo.GetByBookingID(ctx, req.BookingID)
		if err != nil {
			if err == repository.ErrNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "no calendar event for booking"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		ev.GoogleCalendarEventID = &req.EventID
		if err := h.CalendarRepo.Update(ctx, &ev); err != nil {
			h.Log.Error("webhook update failed", zap.Error(err), zap.String("booking_id", req.BookingID))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
		return c.JSON(http.StatusOK, ev)

	case "delete":
		if err := h.CalendarRepo.DeleteByBookingID(ctx, req.BookingID); err != nil {
			h.Log.Error("webhook delete failed", zap.Error(err), zap.String("booking_id", req.BookingID))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
		return c.NoContent(http.StatusNoContent)

	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "action must be update or delete"})
	}
}
