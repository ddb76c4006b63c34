// Package scheduler runs the recurring background jobs of the service.
// Currently a single job exists: the nightly sales report for the day
// that just closed.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/service"
)

// systemUser is recorded as the author of scheduler-generated reports.
const systemUser = "system"

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func New(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{cron: cron.New(), log: log}
}

// Start registers the nightly report job under the given cron expression
// and begins running.  The job regenerates yesterday's report, so an
// occasional missed run heals on the next one.
func (s *Scheduler) Start(spec string, reports *service.ReportService) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		rep, err := reports.GenerateYesterday(ctx, systemUser)
		if err != nil {
			s.log.Error("nightly sales report failed", zap.Error(err))
			return
		}
		s.log.Info("nightly sales report stored",
			zap.String("date", rep.ReportDate),
			zap.Int("bookings", rep.TotalBookings))
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started", zap.String("report_cron", spec))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
