package analytics

import "github.com/rosae/theatre-ops/internal/model"

// DaySummary holds the per-date figures that back a persisted sales
// report: total revenue, the snack/screen split, booking and guest
// counts, and the average booking value.
type DaySummary struct {
	Date            string  `json:"date"`
	TotalRevenue    float64 `json:"totalRevenue"`
	FoodSales       float64 `json:"foodSales"`
	ScreenSales     float64 `json:"screenSales"`
	TotalBookings   int     `json:"totalBookings"`
	TotalGuests     int     `json:"totalGuests"`
	AvgBookingValue float64 `json:"avgBookingValue"`
}

// SummarizeDay aggregates the bookings recorded for one calendar date.
// FoodSales is the snack revenue, ScreenSales the primary charge net of
// snacks, TotalRevenue their sum over total amounts.  AvgBookingValue is
// zero when the date has no bookings.
func SummarizeDay(bookings []model.Booking, date string) DaySummary {
	s := DaySummary{Date: date}
	for i := range bookings {
		b := &bookings[i]
		if b.BookingDate != date {
			continue
		}
		s.TotalRevenue += b.TotalAmount
		s.FoodSales += b.SnacksAmount
		s.ScreenSales += b.TotalAmount - b.SnacksAmount
		s.TotalBookings++
		s.TotalGuests += b.Guests
	}
	if s.TotalBookings > 0 {
		s.AvgBookingValue = s.TotalRevenue / float64(s.TotalBookings)
	}
	return s
}
