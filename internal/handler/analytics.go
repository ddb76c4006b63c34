package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosae/theatre-ops/internal/analytics"
	"github.com/rosae/theatre-ops/internal/repository"
)

// AnalyticsHandler serves the dashboard aggregations.  Each endpoint
// snapshots the ledger and hands it to the pure functions in
// internal/analytics; nothing here mutates state, so these routes sit
// behind the Redis response cache.
type AnalyticsHandler struct {
	Bookings *repository.BookingRepo
}

func NewAnalyticsHandler(b *repository.BookingRepo) *AnalyticsHandler {
	return &AnalyticsHandler{Bookings: b}
}

// DailyRevenue returns per-day revenue points for the trailing window.
// ?days= overrides the default window; zero or negative yields an empty
// series.
func (h *AnalyticsHandler) DailyRevenue(c echo.Context) error {
	days := analytics.DefaultWindowDays
	if s := c.QueryParam("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be an integer"})
		}
		days = n
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	now := time.Now().UTC()
	var points []analytics.DailyRevenuePoint
	if days <= 0 {
		points = analytics.DailyRevenue(nil, days, now)
	} else {
		since := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
		bookings, err := h.Bookings.ListSince(ctx, since)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		points = analytics.DailyRevenue(bookings, days, now)
	}
	return c.JSON(http.StatusOK, echo.Map{"days": days, "series": points})
}

// PaymentMethods returns the all-time cash/UPI split over both charges.
func (h *AnalyticsHandler) PaymentMethods(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	bookings, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, analytics.PaymentMethodBreakdown(bookings))
}

// TimeSlots returns booking count and revenue per literal slot label,
// plus the busiest slot when one exists.
func (h *AnalyticsHandler) TimeSlots(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	bookings, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	perf := analytics.TimeSlotPerformance(bookings)
	resp := echo.Map{"slots": perf}
	if busiest, ok := analytics.BusiestSlot(perf); ok {
		resp["busiest"] = busiest
	}
	return c.JSON(http.StatusOK, resp)
}

// DaySummary returns the aggregate figures for one date.  ?date= defaults
// to today.
func (h *AnalyticsHandler) DaySummary(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	bookings, err := h.Bookings.ListByDate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, analytics.SummarizeDay(bookings, date))
}
