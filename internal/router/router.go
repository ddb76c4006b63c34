// Package router wires every HTTP route to its handler and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rosae/theatre-ops/internal/config"
	"github.com/rosae/theatre-ops/internal/handler"
	"github.com/rosae/theatre-ops/internal/middleware"
	"github.com/rosae/theatre-ops/internal/model"
)

// Handlers collects the handler set registered by Register.
type Handlers struct {
	Auth      *handler.AuthHandler
	Bookings  *handler.BookingHandler
	Expenses  *handler.ExpenseHandler
	Leaves    *handler.LeaveHandler
	Tickets   *handler.TicketHandler
	Analytics *handler.AnalyticsHandler
	Admin     *handler.AdminHandler
	Configs   *handler.ConfigHandler
	Reports   *handler.ReportHandler
	Webhooks  *handler.WebhookHandler
}

// Register mounts all routes.  Unauthenticated operations live under
// /v1/auth; everything else requires a valid access token with the ADMIN
// or EMPLOYEE role, and the routes marked adminOnly additionally require
// ADMIN.  When rdb is non-nil the analytics reads sit behind the Redis
// response cache and every route behind the token-bucket rate limiter.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}

	pub := e.Group("/v1/auth")
	pub.POST("/login", h.Auth.Login)
	pub.POST("/refresh", h.Auth.Refresh)
	pub.POST("/refresh-access", h.Auth.RefreshAccess)
	pub.POST("/logout", h.Auth.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleEmployee))
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	auth.GET("/me", h.Auth.Me)
	auth.POST("/logout", h.Auth.Logout)

	auth.POST("/bookings", h.Bookings.Create)
	auth.GET("/bookings", h.Bookings.List)
	auth.GET("/bookings/date-range", h.Bookings.ListByDateRange)
	auth.GET("/bookings/:id", h.Bookings.Get)
	auth.PUT("/bookings/:id", h.Bookings.Update)
	auth.DELETE("/bookings/:id", h.Bookings.Delete)
	auth.POST("/bookings/rebalance", h.Bookings.Rebalance)
	auth.GET("/bookings/:id/calendar-event", h.Bookings.CalendarEvent)

	auth.POST("/expenses", h.Expenses.Create)
	auth.GET("/expenses", h.Expenses.List)
	auth.GET("/expenses/export", h.Expenses.ExportCSV)

	auth.POST("/leave-applications", h.Leaves.Apply)
	auth.GET("/leave-applications", h.Leaves.List)
	auth.PATCH("/leave-applications/:id/status", h.Leaves.Review, adminOnly)

	auth.POST("/customer-tickets", h.Tickets.Create)
	auth.GET("/customer-tickets", h.Tickets.List)
	auth.PATCH("/customer-tickets/:id/status", h.Tickets.UpdateStatus)

	auth.GET("/config", h.Configs.GetCatalogs)
	auth.PUT("/config", h.Configs.UpdateCatalogs, adminOnly)

	auth.GET("/activity", h.Admin.ActivityLogs, adminOnly)

	auth.POST("/users", h.Admin.CreateUser, adminOnly)
	auth.GET("/users", h.Admin.ListUsers, adminOnly)
	auth.PATCH("/users/:id/role", h.Admin.UpdateRole, adminOnly)
	auth.DELETE("/users/:id", h.Admin.DeleteUser, adminOnly)

	auth.POST("/sales-reports/generate", h.Reports.Generate, adminOnly)
	auth.GET("/sales-reports", h.Reports.List)
	auth.GET("/sales-reports/:date", h.Reports.Get)

	auth.POST("/webhooks/calendar", h.Webhooks.Calendar)

	// Dashboard aggregations are pure reads over the ledger; cache them.
	an := auth.Group("/analytics")
	if rdb != nil {
		an.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	an.GET("/daily-revenue", h.Analytics.DailyRevenue)
	an.GET("/payment-methods", h.Analytics.PaymentMethods)
	an.GET("/time-slots", h.Analytics.TimeSlots)
	an.GET("/day-summary", h.Analytics.DaySummary)
}
