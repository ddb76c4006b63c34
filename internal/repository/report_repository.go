package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

// ReportRepo persists materialized sales reports.  One row per report
// date; regenerating a date replaces the previous row so reruns (manual
// or from the nightly job) stay idempotent.
type ReportRepo struct{ db *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

const reportColumns = `id, DATE_FORMAT(report_date, '%Y-%m-%d'),
	total_revenue, food_sales, screen_sales,
	total_bookings, total_guests, avg_booking_value, created_by, created_at`

// Upsert stores a report for its date, replacing any existing row.
func (r *ReportRepo) Upsert(ctx context.Context, rep *model.SalesReport) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO sales_reports
		(id, report_date, total_revenue, food_sales, screen_sales,
		 total_bookings, total_guests, avg_booking_value, created_by)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
		 total_revenue=VALUES(total_revenue), food_sales=VALUES(food_sales),
		 screen_sales=VALUES(screen_sales), total_bookings=VALUES(total_bookings),
		 total_guests=VALUES(total_guests), avg_booking_value=VALUES(avg_booking_value),
		 created_by=VALUES(created_by)`,
		rep.ID, rep.ReportDate, rep.TotalRevenue, rep.FoodSales, rep.ScreenSales,
		rep.TotalBookings, rep.TotalGuests, rep.AvgBookingValue, rep.CreatedBy)
	if err != nil {
		return err
	}
	got, err := r.GetByDate(ctx, rep.ReportDate)
	if err != nil {
		return err
	}
	*rep = got
	return nil
}

// GetByDate fetches the report for one date.
func (r *ReportRepo) GetByDate(ctx context.Context, date string) (model.SalesReport, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reportColumns+" FROM sales_reports WHERE report_date=? LIMIT 1", date)
	var rep model.SalesReport
	err := row.Scan(&rep.ID, &rep.ReportDate, &rep.TotalRevenue, &rep.FoodSales,
		&rep.ScreenSales, &rep.TotalBookings, &rep.TotalGuests,
		&rep.AvgBookingValue, &rep.CreatedBy, &rep.CreatedAt)
	if err == sql.ErrNoRows {
		return rep, ErrNotFound
	}
	return rep, err
}

// ListByDateRange returns reports inside the inclusive [start, end]
// range, most recent first.
func (r *ReportRepo) ListByDateRange(ctx context.Context, start, end string) ([]model.SalesReport, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reportColumns+" FROM sales_reports WHERE report_date BETWEEN ? AND ? ORDER BY report_date DESC",
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SalesReport, 0, 16)
	for rows.Next() {
		var rep model.SalesReport
		if err := rows.Scan(&rep.ID, &rep.ReportDate, &rep.TotalRevenue, &rep.FoodSales,
			&rep.ScreenSales, &rep.TotalBookings, &rep.TotalGuests,
			&rep.AvgBookingValue, &rep.CreatedBy, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
