package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/repository"
)

// TicketHandler implements front-desk customer tickets.
type TicketHandler struct {
	Tickets  *repository.TicketRepo
	Activity *repository.ActivityRepo
	Log      *zap.Logger
}

func NewTicketHandler(t *repository.TicketRepo, act *repository.ActivityRepo, log *zap.Logger) *TicketHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &TicketHandler{Tickets: t, Activity: act, Log: log}
}

type ticketReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ticketStatusReq struct {
	Status     string  `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

// Create opens a new ticket.
func (h *TicketHandler) Create(c echo.Context) error {
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	t := model.CustomerTicket{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID(c),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Tickets.Create(ctx, &t); err != nil {
		h.Log.Error("create ticket failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create ticket failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "CREATE", "ticket", t.ID, t.Title); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.JSON(http.StatusCreated, t)
}

// List returns all tickets, newest first.
func (h *TicketHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Tickets.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus moves a ticket through its lifecycle and optionally
// assigns it.
func (h *TicketHandler) UpdateStatus(c echo.Context) error {
	var req ticketStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	switch status {
	case model.TicketStatusOpen, model.TicketStatusInProgress, model.TicketStatusClosed:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be open, in_progress or closed"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Tickets.UpdateStatus(ctx, c.Param("id"), status, req.AssignedTo)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		h.Log.Error("update ticket failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update ticket failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "UPDATE", "ticket", t.ID, "status="+status); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, t)
}
