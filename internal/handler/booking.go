package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/queue"
	"github.com/rosae/theatre-ops/internal/repository"
	"github.com/rosae/theatre-ops/internal/service"
	"github.com/rosae/theatre-ops/internal/settlement"
)

// BookingHandler implements the booking ledger endpoints.  Every write
// passes through settlement.Validate first: a booking whose payment
// splits do not reconcile is rejected with 400 before any row is touched.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Calendar *repository.CalendarRepo
	Activity *repository.ActivityRepo
	Log      *zap.Logger
}

func NewBookingHandler(b *repository.BookingRepo, cal *repository.CalendarRepo,
	act *repository.ActivityRepo, log *zap.Logger) *BookingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingHandler{Bookings: b, Calendar: cal, Activity: act, Log: log}
}

type rebalanceReq struct {
	settlement.Input
	ChangedField string `json:"changedField"`
}

type deleteReq struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment"`
}

// settlementError renders a failed settlement check.  The message field
// carries the exact wording booking forms display to the user.
func settlementError(c echo.Context, verr *settlement.Error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":   verr.Message,
		"details": verr,
	})
}

// Create records a new booking after the settlement gate passes.
func (h *BookingHandler) Create(c echo.Context) error {
	var in settlement.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.TheatreName == "" || in.TimeSlot == "" || !validDate(in.BookingDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theatreName, timeSlot and bookingDate are required"})
	}
	in, verr := settlement.Validate(in)
	if verr != nil {
		return settlementError(c, verr)
	}

	b := bookingFromInput(in)
	b.CreatedBy = userID(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Bookings.Create(ctx, &b); err != nil {
		h.Log.Error("create booking failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	h.audit(ctx, c, "CREATE", b.ID,
		fmt.Sprintf("booking %s %s on %s, total %.2f", b.TheatreName, b.TimeSlot, b.BookingDate, b.TotalAmount))
	h.mirrorCalendar(ctx, &b, false)
	h.publishRecorded(&b)

	return c.JSON(http.StatusCreated, b)
}

// Get fetches one booking by id.
func (h *BookingHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// List returns recent bookings, newest first.  ?limit= caps the page.
func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.Bookings.List(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListByDateRange returns the bookings inside the inclusive
// [start_date, end_date] range, most recent date first.
func (h *BookingHandler) ListByDateRange(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if !validDate(start) || !validDate(end) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Bookings.ListByDateRange(ctx, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// Update rewrites a booking.  The replacement goes through the same
// settlement gate as a fresh create.
func (h *BookingHandler) Update(c echo.Context) error {
	var in settlement.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.TheatreName == "" || in.TimeSlot == "" || !validDate(in.BookingDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theatreName, timeSlot and bookingDate are required"})
	}
	in, verr := settlement.Validate(in)
	if verr != nil {
		return settlementError(c, verr)
	}

	b := bookingFromInput(in)
	b.ID = c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Bookings.Update(ctx, &b); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		h.Log.Error("update booking failed", zap.Error(err), zap.String("id", b.ID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
	}

	h.audit(ctx, c, "UPDATE", b.ID,
		fmt.Sprintf("booking %s %s on %s, total %.2f", b.TheatreName, b.TimeSlot, b.BookingDate, b.TotalAmount))
	h.mirrorCalendar(ctx, &b, true)

	return c.JSON(http.StatusOK, b)
}

// Rebalance recomputes the complement of one edited payment split field
// and runs the full settlement check.  Pure helper for interactive
// booking forms; nothing is persisted.
func (h *BookingHandler) Rebalance(c echo.Context) error {
	var req rebalanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	out, err := settlement.Rebalance(req.Input, settlement.Field(req.ChangedField))
	if err != nil {
		if verr, ok := err.(*settlement.Error); ok {
			return settlementError(c, verr)
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Delete hard-deletes a booking.  A valid reason code is mandatory; the
// reason and optional comment survive only in the activity log and the
// booking.removed event.
func (h *BookingHandler) Delete(c echo.Context) error {
	var req deleteReq
	_ = c.Bind(&req)
	if req.Reason == "" {
		req.Reason = c.QueryParam("reason")
	}
	reason := model.DeleteReason(strings.ToUpper(strings.TrimSpace(req.Reason)))
	if !reason.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "reason must be one of CANCELLATION, RESCHEDULE, MISTAKE",
		})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.Bookings.Delete(ctx, b.ID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		h.Log.Error("delete booking failed", zap.Error(err), zap.String("id", b.ID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete booking failed"})
	}

	details := fmt.Sprintf("reason=%s booking %s %s on %s, total %.2f",
		reason, b.TheatreName, b.TimeSlot, b.BookingDate, b.TotalAmount)
	if req.Comment != "" {
		details += " comment=" + req.Comment
	}
	h.audit(ctx, c, "DELETE", b.ID, details)

	if err := h.Calendar.DeleteByBookingID(ctx, b.ID); err != nil {
		h.Log.Warn("delete calendar event failed", zap.Error(err), zap.String("booking_id", b.ID))
	}
	h.publishRemoved(&b, string(reason), req.Comment, userID(c))

	return c.NoContent(http.StatusNoContent)
}

// CalendarEvent returns the staff-calendar event mirrored from a booking.
func (h *BookingHandler) CalendarEvent(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ev, err := h.Calendar.GetByBookingID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no calendar event for booking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, ev)
}

func bookingFromInput(in settlement.Input) model.Booking {
	b := model.Booking{
		TheatreName:  in.TheatreName,
		TimeSlot:     in.TimeSlot,
		BookingDate:  in.BookingDate,
		Guests:       in.Guests,
		TotalAmount:  in.TotalAmount,
		CashAmount:   in.CashAmount,
		UpiAmount:    in.UpiAmount,
		SnacksAmount: in.SnacksAmount,
		SnacksCash:   in.SnacksCash,
		SnacksUpi:    in.SnacksUpi,
	}
	if p := strings.TrimSpace(in.PhoneNumber); p != "" {
		b.PhoneNumber = &p
	}
	return b
}

// audit appends to the activity log; failures are logged, never surfaced.
func (h *BookingHandler) audit(ctx context.Context, c echo.Context, action, id, details string) {
	if err := h.Activity.Log(ctx, userID(c), action, "booking", id, details); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err), zap.String("action", action))
	}
}

// mirrorCalendar keeps the staff-calendar row in step with the booking.
// Slots that do not parse as a clock range simply have no event.
func (h *BookingHandler) mirrorCalendar(ctx context.Context, b *model.Booking, update bool) {
	ev, err := service.BuildCalendarEvent(b)
	if err != nil {
		h.Log.Debug("no calendar event for booking", zap.String("id", b.ID), zap.Error(err))
		if update {
			_ = h.Calendar.DeleteByBookingID(ctx, b.ID)
		}
		return
	}
	if update {
		if existing, gerr := h.Calendar.GetByBookingID(ctx, b.ID); gerr == nil {
			ev.ID = existing.ID
			ev.GoogleCalendarEventID = existing.GoogleCalendarEventID
			if uerr := h.Calendar.Update(ctx, &ev); uerr != nil {
				h.Log.Warn("update calendar event failed", zap.Error(uerr), zap.String("booking_id", b.ID))
			}
			return
		}
	}
	if cerr := h.Calendar.Create(ctx, &ev); cerr != nil {
		h.Log.Warn("create calendar event failed", zap.Error(cerr), zap.String("booking_id", b.ID))
	}
}

// publishRecorded emits the booking.recorded event in the background so a
// slow or absent broker never delays the response.
func (h *BookingHandler) publishRecorded(b *model.Booking) {
	ev := queue.BookingRecordedEvent{
		BookingID:    b.ID,
		TheatreName:  b.TheatreName,
		TimeSlot:     b.TimeSlot,
		BookingDate:  b.BookingDate,
		Guests:       b.Guests,
		TotalAmount:  b.TotalAmount,
		SnacksAmount: b.SnacksAmount,
		CreatedBy:    b.CreatedBy,
		RecordedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = service.PublishBookingRecorded(ctx, h.Log, ev)
	}()
}

func (h *BookingHandler) publishRemoved(b *model.Booking, reason, comment, removedBy string) {
	ev := queue.BookingRemovedEvent{
		BookingID:   b.ID,
		TheatreName: b.TheatreName,
		BookingDate: b.BookingDate,
		Reason:      reason,
		Comment:     comment,
		RemovedBy:   removedBy,
		RemovedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = service.PublishBookingRemoved(ctx, h.Log, ev)
	}()
}
