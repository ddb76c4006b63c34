package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/repository"
)

// LeaveHandler implements staff leave applications.  Anyone can apply;
// only admins review.
type LeaveHandler struct {
	Leaves   *repository.LeaveRepo
	Activity *repository.ActivityRepo
	Log      *zap.Logger
}

func NewLeaveHandler(l *repository.LeaveRepo, act *repository.ActivityRepo, log *zap.Logger) *LeaveHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeaveHandler{Leaves: l, Activity: act, Log: log}
}

type leaveReq struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

type leaveReviewReq struct {
	Status string `json:"status"`
}

// Apply files a leave application for the authenticated user.
func (h *LeaveHandler) Apply(c echo.Context) error {
	var req leaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !validDate(req.StartDate) || !validDate(req.EndDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "startDate and endDate must be YYYY-MM-DD"})
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "endDate must not precede startDate"})
	}
	if strings.TrimSpace(req.Reason) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reason is required"})
	}

	l := model.LeaveApplication{
		UserID:    userID(c),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    strings.TrimSpace(req.Reason),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Leaves.Create(ctx, &l); err != nil {
		h.Log.Error("create leave failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create leave failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "CREATE", "leave", l.ID,
		l.StartDate+" to "+l.EndDate); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.JSON(http.StatusCreated, l)
}

// List returns leave applications.  Admins see everything; employees see
// only their own.
func (h *LeaveHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	all, err := h.Leaves.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if userRole(c) == model.RoleAdmin {
		return c.JSON(http.StatusOK, all)
	}

	uid := userID(c)
	own := make([]model.LeaveApplication, 0, len(all))
	for _, l := range all {
		if l.UserID == uid {
			own = append(own, l)
		}
	}
	return c.JSON(http.StatusOK, own)
}

// Review approves or rejects a pending application.  Admin only.
func (h *LeaveHandler) Review(c echo.Context) error {
	var req leaveReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != model.LeaveStatusApproved && status != model.LeaveStatusRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be approved or rejected"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Leaves.UpdateStatus(ctx, c.Param("id"), status, userID(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "leave application not found"})
		}
		h.Log.Error("review leave failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "review failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), strings.ToUpper(status), "leave", l.ID, ""); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, l)
}
