package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/analytics"
	"github.com/rosae/theatre-ops/internal/model"
)

var today = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

func booking(date, slot string, total, snacks float64) model.Booking {
	// Splits chosen so every fixture row individually satisfies both
	// settlement invariants.
	return model.Booking{
		TheatreName:  "Screen 1",
		TimeSlot:     slot,
		BookingDate:  date,
		Guests:       2,
		TotalAmount:  total,
		CashAmount:   total / 2,
		UpiAmount:    total / 2,
		SnacksAmount: snacks,
		SnacksCash:   snacks,
		SnacksUpi:    0,
	}
}

func TestDailyRevenueZeroFillsEmptyLedger(t *testing.T) {
	points := analytics.DailyRevenue(nil, 7, today)

	require.Len(t, points, 7)
	assert.Equal(t, "2026-08-24", points[0].Date)
	assert.Equal(t, "2026-08-30", points[6].Date)
	for _, p := range points {
		assert.Zero(t, p.Revenue)
		assert.Zero(t, p.Bookings)
	}
}

func TestDailyRevenueSumsPerDay(t *testing.T) {
	bookings := []model.Booking{
		booking("2026-08-28", "2:00 PM", 500, 0),
		booking("2026-08-28", "4:00 PM", 700, 0),
		booking("2026-08-28", "6:00 PM", 300, 0),
		booking("2026-08-30", "2:00 PM", 1000, 250),
	}

	points := analytics.DailyRevenue(bookings, 7, today)
	require.Len(t, points, 7)

	byDate := map[string]analytics.DailyRevenuePoint{}
	for _, p := range points {
		byDate[p.Date] = p
	}
	assert.Equal(t, 1500.0, byDate["2026-08-28"].Revenue)
	assert.Equal(t, 3, byDate["2026-08-28"].Bookings)
	assert.Equal(t, 1250.0, byDate["2026-08-30"].Revenue, "snacks count toward revenue")
	assert.Equal(t, 1, byDate["2026-08-30"].Bookings)
	assert.Zero(t, byDate["2026-08-29"].Bookings, "empty day stays zero-filled")
}

func TestDailyRevenueOrderedOldestToNewest(t *testing.T) {
	points := analytics.DailyRevenue(nil, 3, today)
	require.Len(t, points, 3)
	assert.Equal(t, []string{"2026-08-28", "2026-08-29", "2026-08-30"},
		[]string{points[0].Date, points[1].Date, points[2].Date})
}

func TestDailyRevenueInvalidWindow(t *testing.T) {
	assert.Empty(t, analytics.DailyRevenue(nil, 0, today))
	assert.Empty(t, analytics.DailyRevenue(nil, -5, today))
}

func TestDailyRevenueIdempotent(t *testing.T) {
	bookings := []model.Booking{
		booking("2026-08-29", "2:00 PM", 800, 100),
		booking("2026-08-30", "4:00 PM", 600, 0),
	}
	first := analytics.DailyRevenue(bookings, 7, today)
	second := analytics.DailyRevenue(bookings, 7, today)
	assert.Equal(t, first, second)
}

func TestPaymentMethodBreakdown(t *testing.T) {
	bookings := []model.Booking{
		{TotalAmount: 1200, CashAmount: 800, UpiAmount: 400, SnacksAmount: 300, SnacksCash: 200, SnacksUpi: 100},
		{TotalAmount: 500, CashAmount: 0, UpiAmount: 500},
	}

	got := analytics.PaymentMethodBreakdown(bookings)
	assert.Equal(t, 1000.0, got.Cash)
	assert.Equal(t, 1000.0, got.Upi)
}

func TestPaymentBreakdownReconcilesToTotalRevenue(t *testing.T) {
	// When every row satisfies both settlement invariants, cash plus
	// electronic re-derives total revenue.
	bookings := []model.Booking{
		booking("2026-08-28", "2:00 PM", 500, 120),
		booking("2026-08-29", "4:00 PM", 750.50, 0),
		booking("2026-08-30", "6:00 PM", 1200, 299.99),
	}

	var total float64
	for _, b := range bookings {
		total += b.TotalAmount + b.SnacksAmount
	}
	got := analytics.PaymentMethodBreakdown(bookings)
	assert.InDelta(t, total, got.Cash+got.Upi, 0.01)
}

func TestPaymentBreakdownEmptyLedger(t *testing.T) {
	got := analytics.PaymentMethodBreakdown(nil)
	assert.Zero(t, got.Cash)
	assert.Zero(t, got.Upi)
}

func TestTimeSlotPerformance(t *testing.T) {
	bookings := []model.Booking{
		booking("2026-08-28", "2:30 PM", 1200, 0),
		booking("2026-08-28", "5:00 PM", 1500, 0),
		booking("2026-08-29", "2:30 PM", 800, 0),
	}

	perf := analytics.TimeSlotPerformance(bookings)
	require.Len(t, perf, 2)

	bySlot := map[string]analytics.SlotPerformance{}
	for _, p := range perf {
		bySlot[p.TimeSlot] = p
	}
	assert.Equal(t, 2, bySlot["2:30 PM"].Bookings)
	assert.Equal(t, 2000.0, bySlot["2:30 PM"].Revenue)
	assert.Equal(t, 1, bySlot["5:00 PM"].Bookings)
	assert.Equal(t, 1500.0, bySlot["5:00 PM"].Revenue)
}

func TestTimeSlotLabelsNotNormalized(t *testing.T) {
	bookings := []model.Booking{
		booking("2026-08-28", "2:30 PM", 100, 0),
		booking("2026-08-28", "2:30PM", 200, 0),
	}
	perf := analytics.TimeSlotPerformance(bookings)
	assert.Len(t, perf, 2, "literal labels form distinct groups")
}

func TestTimeSlotDiscoveryOrder(t *testing.T) {
	bookings := []model.Booking{
		booking("2026-08-28", "6:00 PM", 100, 0),
		booking("2026-08-28", "10:00 AM", 100, 0),
		booking("2026-08-28", "6:00 PM", 100, 0),
		booking("2026-08-28", "2:00 PM", 100, 0),
	}
	perf := analytics.TimeSlotPerformance(bookings)
	require.Len(t, perf, 3)
	assert.Equal(t, "6:00 PM", perf[0].TimeSlot)
	assert.Equal(t, "10:00 AM", perf[1].TimeSlot)
	assert.Equal(t, "2:00 PM", perf[2].TimeSlot)
}

func TestBusiestSlot(t *testing.T) {
	perf := []analytics.SlotPerformance{
		{TimeSlot: "2:30 PM", Bookings: 2, Revenue: 2000},
		{TimeSlot: "5:00 PM", Bookings: 1, Revenue: 1500},
	}
	best, ok := analytics.BusiestSlot(perf)
	require.True(t, ok)
	assert.Equal(t, "2:30 PM", best.TimeSlot)
}

func TestBusiestSlotTieKeepsEarliest(t *testing.T) {
	perf := []analytics.SlotPerformance{
		{TimeSlot: "10:00 AM", Revenue: 900},
		{TimeSlot: "8:00 PM", Revenue: 900},
	}
	best, ok := analytics.BusiestSlot(perf)
	require.True(t, ok)
	assert.Equal(t, "10:00 AM", best.TimeSlot)
}

func TestBusiestSlotEmpty(t *testing.T) {
	_, ok := analytics.BusiestSlot(nil)
	assert.False(t, ok)
}
