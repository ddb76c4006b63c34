package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/repository"
	"github.com/rosae/theatre-ops/internal/service"
)

// ReportHandler exposes materialized sales reports.  Generation is
// admin-only and idempotent per date; the nightly scheduler uses the same
// service path.
type ReportHandler struct {
	Svc     *service.ReportService
	Reports *repository.ReportRepo
	Log     *zap.Logger
}

func NewReportHandler(svc *service.ReportService, r *repository.ReportRepo, log *zap.Logger) *ReportHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportHandler{Svc: svc, Reports: r, Log: log}
}

type generateReportReq struct {
	Date string `json:"date"`
}

// Generate builds and stores the report for a date, defaulting to
// yesterday when none is given.
func (h *ReportHandler) Generate(c echo.Context) error {
	var req generateReportReq
	_ = c.Bind(&req)
	if req.Date == "" {
		req.Date = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	}
	if !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rep, err := h.Svc.Generate(ctx, req.Date, userID(c))
	if err != nil {
		h.Log.Error("generate report failed", zap.Error(err), zap.String("date", req.Date))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generate report failed"})
	}
	return c.JSON(http.StatusCreated, rep)
}

// Get fetches the stored report for one date.
func (h *ReportHandler) Get(c echo.Context) error {
	date := c.Param("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rep, err := h.Reports.GetByDate(ctx, date)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no report for date"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rep)
}

// List returns reports inside the inclusive date range, defaulting to the
// trailing 30 days.
func (h *ReportHandler) List(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if start == "" && end == "" {
		now := time.Now().UTC()
		end = now.Format("2006-01-02")
		start = now.AddDate(0, 0, -29).Format("2006-01-02")
	}
	if !validDate(start) || !validDate(end) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Reports.ListByDateRange(ctx, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}
