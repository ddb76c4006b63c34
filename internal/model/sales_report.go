package model

import "time"

// SalesReport is a persisted per-date aggregate over the booking ledger.
// Unlike the dashboard analytics (recomputed on every request), sales
// reports are materialized rows: generated on demand or nightly by the
// scheduler for the previous day.  Corresponds to the `sales_reports`
// table.
//
// FoodSales is the snack revenue for the date, ScreenSales the primary
// charge net of snacks.  AvgBookingValue is TotalRevenue over
// TotalBookings, zero when there were no bookings.
type SalesReport struct {
	ID              string    `json:"id"`
	ReportDate      string    `json:"reportDate"`
	TotalRevenue    float64   `json:"totalRevenue"`
	FoodSales       float64   `json:"foodSales"`
	ScreenSales     float64   `json:"screenSales"`
	TotalBookings   int       `json:"totalBookings"`
	TotalGuests     int       `json:"totalGuests"`
	AvgBookingValue float64   `json:"avgBookingValue"`
	CreatedBy       string    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
}
