// Package analytics derives dashboard figures from the booking ledger.
// Every function takes a materialized snapshot of booking rows and
// recomputes its result from scratch: nothing here is cached or persisted,
// and re-running a function with the same snapshot always yields the same
// output.  Rows are trusted as persisted: the settlement validator is the
// sole gate, so a corrupt row sums as-is.
package analytics

import (
	"time"

	"github.com/rosae/theatre-ops/internal/model"
)

// DefaultWindowDays is the trailing window used by the dashboard's daily
// revenue chart when the caller does not specify one.
const DefaultWindowDays = 7

// dateLayout is the calendar-date form used throughout the ledger.
const dateLayout = "2006-01-02"

// DailyRevenuePoint is one bar of the trailing revenue chart: a calendar
// date, the revenue booked for that date (primary charge plus snacks),
// and how many bookings it came from.
type DailyRevenuePoint struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// PaymentBreakdown is the lifetime cash-versus-electronic split across
// the whole ledger.  Raw sums only: percentage-of-total is a display
// concern, and so is what to show when both sums are zero.
type PaymentBreakdown struct {
	Cash float64 `json:"cash"`
	Upi  float64 `json:"upi"`
}

// SlotPerformance aggregates bookings sharing a literal time-slot label.
type SlotPerformance struct {
	TimeSlot string  `json:"timeSlot"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// DailyRevenue buckets bookings by booking date over a trailing window of
// windowDays calendar days ending at today (inclusive).  The result has
// exactly one point per day, zero-filled for days without bookings and
// ordered oldest to newest, so a bar chart renders empty days as zero bars
// instead of silently compressing the axis.  A window of zero or less is
// an invalid request and yields an empty slice; a dashboard widget shows
// nothing rather than erroring.
func DailyRevenue(bookings []model.Booking, windowDays int, today time.Time) []DailyRevenuePoint {
	if windowDays <= 0 {
		return []DailyRevenuePoint{}
	}

	type bucket struct {
		revenue float64
		count   int
	}
	byDate := make(map[string]*bucket, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		bk := byDate[b.BookingDate]
		if bk == nil {
			bk = &bucket{}
			byDate[b.BookingDate] = bk
		}
		bk.revenue += b.TotalAmount + b.SnacksAmount
		bk.count++
	}

	points := make([]DailyRevenuePoint, 0, windowDays)
	start := today.AddDate(0, 0, -(windowDays - 1))
	for i := 0; i < windowDays; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		p := DailyRevenuePoint{Date: date}
		if bk := byDate[date]; bk != nil {
			p.Revenue = bk.revenue
			p.Bookings = bk.count
		}
		points = append(points, p)
	}
	return points
}

// PaymentMethodBreakdown sums how money was collected across the entire
// booking set, snack splits included.  Not time-windowed: this is a
// lifetime figure.  The field is named Upi for compatibility with
// existing dashboard callers; it covers all electronic payment.
func PaymentMethodBreakdown(bookings []model.Booking) PaymentBreakdown {
	var out PaymentBreakdown
	for i := range bookings {
		b := &bookings[i]
		out.Cash += b.CashAmount + b.SnacksCash
		out.Upi += b.UpiAmount + b.SnacksUpi
	}
	return out
}

// TimeSlotPerformance groups bookings by their literal time-slot string.
// No trimming or case folding, so "2:30 PM" and "2:30PM" are distinct
// groups.  Result order is the discovery order of distinct labels in the
// snapshot; callers wanting sorted-by-revenue sort on their side.
func TimeSlotPerformance(bookings []model.Booking) []SlotPerformance {
	index := make(map[string]int, 8)
	perf := make([]SlotPerformance, 0, 8)
	for i := range bookings {
		b := &bookings[i]
		j, seen := index[b.TimeSlot]
		if !seen {
			j = len(perf)
			index[b.TimeSlot] = j
			perf = append(perf, SlotPerformance{TimeSlot: b.TimeSlot})
		}
		perf[j].Bookings++
		perf[j].Revenue += b.TotalAmount + b.SnacksAmount
	}
	return perf
}

// BusiestSlot picks the slot with the highest revenue; revenue is the
// single ranking key.  A tie keeps the earliest-discovered slot.  The
// second return is false for an empty input.
func BusiestSlot(perf []SlotPerformance) (SlotPerformance, bool) {
	if len(perf) == 0 {
		return SlotPerformance{}, false
	}
	best := perf[0]
	for _, p := range perf[1:] {
		if p.Revenue > best.Revenue {
			best = p
		}
	}
	return best, true
}
