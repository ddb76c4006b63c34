package main

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/config"
	"github.com/rosae/theatre-ops/internal/database"
	"github.com/rosae/theatre-ops/internal/handler"
	"github.com/rosae/theatre-ops/internal/queue"
	"github.com/rosae/theatre-ops/internal/repository"
	"github.com/rosae/theatre-ops/internal/router"
	"github.com/rosae/theatre-ops/internal/scheduler"
	"github.com/rosae/theatre-ops/internal/service"
	"github.com/rosae/theatre-ops/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	defer db.Close()

	// nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bookings := repository.NewBookingRepo(db)
	expenses := repository.NewExpenseRepo(db)
	leaves := repository.NewLeaveRepo(db)
	tickets := repository.NewTicketRepo(db)
	activity := repository.NewActivityRepo(db)
	calendar := repository.NewCalendarRepo(db)
	reports := repository.NewReportRepo(db)
	configs := repository.NewConfigRepo(db)

	reportSvc := service.NewReportService(bookings, reports, logger.Named(log, "reports"))

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Bookings:  handler.NewBookingHandler(bookings, calendar, activity, logger.Named(log, "bookings")),
		Expenses:  handler.NewExpenseHandler(expenses, activity, logger.Named(log, "expenses")),
		Leaves:    handler.NewLeaveHandler(leaves, activity, logger.Named(log, "leaves")),
		Tickets:   handler.NewTicketHandler(tickets, activity, logger.Named(log, "tickets")),
		Analytics: handler.NewAnalyticsHandler(bookings),
		Admin:     handler.NewAdminHandler(cfg, users, tokens, activity, logger.Named(log, "admin")),
		Configs:   handler.NewConfigHandler(configs, activity, logger.Named(log, "configs")),
		Reports:   handler.NewReportHandler(reportSvc, reports, logger.Named(log, "reports")),
		Webhooks:  handler.NewWebhookHandler(calendar, logger.Named(log, "webhooks")),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, h, rdb)

	sched := scheduler.New(logger.Named(log, "scheduler"))
	if err := sched.Start(cfg.ReportCron, reportSvc); err != nil {
		log.Fatal("scheduler start failed", zap.Error(err))
	}
	defer sched.Stop()

	go func() {
		if err := queue.StartBookingConsumer(logger.Named(log, "consumer")); err != nil {
			log.Warn("booking consumer stopped", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
