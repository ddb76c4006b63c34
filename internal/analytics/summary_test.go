package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosae/theatre-ops/internal/analytics"
	"github.com/rosae/theatre-ops/internal/model"
)

func TestSummarizeDay(t *testing.T) {
	bookings := []model.Booking{
		{BookingDate: "2026-08-28", Guests: 4, TotalAmount: 1200, SnacksAmount: 300},
		{BookingDate: "2026-08-28", Guests: 2, TotalAmount: 800, SnacksAmount: 0},
		{BookingDate: "2026-08-29", Guests: 6, TotalAmount: 5000, SnacksAmount: 1000},
	}

	s := analytics.SummarizeDay(bookings, "2026-08-28")
	assert.Equal(t, "2026-08-28", s.Date)
	assert.Equal(t, 2000.0, s.TotalRevenue)
	assert.Equal(t, 300.0, s.FoodSales)
	assert.Equal(t, 1700.0, s.ScreenSales)
	assert.Equal(t, 2, s.TotalBookings)
	assert.Equal(t, 6, s.TotalGuests)
	assert.Equal(t, 1000.0, s.AvgBookingValue)
}

func TestSummarizeDayNoBookings(t *testing.T) {
	s := analytics.SummarizeDay(nil, "2026-08-28")
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TotalBookings)
	assert.Zero(t, s.AvgBookingValue, "no division by a zero booking count")
}
