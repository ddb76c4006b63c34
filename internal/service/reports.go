package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/analytics"
	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/repository"
)

// ReportService materializes per-date sales reports from the booking
// ledger.  Generation is idempotent: rerunning a date overwrites the
// previous row.  Shared by the admin endpoint and the nightly scheduler.
type ReportService struct {
	Bookings *repository.BookingRepo
	Reports  *repository.ReportRepo
	Log      *zap.Logger
}

func NewReportService(b *repository.BookingRepo, r *repository.ReportRepo, log *zap.Logger) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{Bookings: b, Reports: r, Log: log}
}

// Generate builds and stores the sales report for one calendar date.
// A date with no bookings still produces a report row of zeroes.
func (s *ReportService) Generate(ctx context.Context, date, createdBy string) (model.SalesReport, error) {
	bookings, err := s.Bookings.ListByDate(ctx, date)
	if err != nil {
		return model.SalesReport{}, err
	}
	sum := analytics.SummarizeDay(bookings, date)

	rep := model.SalesReport{
		ReportDate:      date,
		TotalRevenue:    sum.TotalRevenue,
		FoodSales:       sum.FoodSales,
		ScreenSales:     sum.ScreenSales,
		TotalBookings:   sum.TotalBookings,
		TotalGuests:     sum.TotalGuests,
		AvgBookingValue: sum.AvgBookingValue,
		CreatedBy:       createdBy,
	}
	if err := s.Reports.Upsert(ctx, &rep); err != nil {
		return model.SalesReport{}, err
	}
	s.Log.Info("sales report generated",
		zap.String("date", date),
		zap.Int("bookings", rep.TotalBookings),
		zap.Float64("revenue", rep.TotalRevenue))
	return rep, nil
}

// GenerateYesterday generates the report for the previous calendar day.
// The nightly job runs shortly after midnight, so "yesterday" is the day
// that just closed.
func (s *ReportService) GenerateYesterday(ctx context.Context, createdBy string) (model.SalesReport, error) {
	date := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	return s.Generate(ctx, date, createdBy)
}
