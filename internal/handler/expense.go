package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/repository"
	"github.com/rosae/theatre-ops/internal/utils"
)

// ExpenseHandler implements expense tracking and the CSV export.
type ExpenseHandler struct {
	Expenses *repository.ExpenseRepo
	Activity *repository.ActivityRepo
	Log      *zap.Logger
}

func NewExpenseHandler(e *repository.ExpenseRepo, act *repository.ActivityRepo, log *zap.Logger) *ExpenseHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpenseHandler{Expenses: e, Activity: act, Log: log}
}

type expenseReq struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate"`
}

var errBadDateRange = errors.New("start_date and end_date must be YYYY-MM-DD")

// Create records an expense entry.
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" || !validDate(req.ExpenseDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category and expenseDate are required"})
	}
	if req.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must not be negative"})
	}

	e := model.Expense{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		CreatedBy:   userID(c),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Expenses.Create(ctx, &e); err != nil {
		h.Log.Error("create expense failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create expense failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "CREATE", "expense", e.ID,
		fmt.Sprintf("%s %.2f on %s", e.Category, e.Amount, e.ExpenseDate)); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.JSON(http.StatusCreated, e)
}

// List returns expenses filtered by category or inclusive date range.
func (h *ExpenseHandler) List(c echo.Context) error {
	out, err := h.filtered(c)
	if err != nil {
		if err == errBadDateRange {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// ExportCSV streams the filtered expenses as a CSV attachment.  The same
// query parameters as List apply; no filter exports the full ledger.
func (h *ExpenseHandler) ExportCSV(c echo.Context) error {
	out, err := h.filtered(c)
	if err != nil {
		if err == errBadDateRange {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	data, err := utils.ExpensesCSV(out)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

func (h *ExpenseHandler) filtered(c echo.Context) ([]model.Expense, error) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	category := c.QueryParam("category")

	switch {
	case start != "" || end != "":
		if !validDate(start) || !validDate(end) {
			return nil, errBadDateRange
		}
		return h.Expenses.ListByDateRange(ctx, start, end)
	case category != "":
		return h.Expenses.ListByCategory(ctx, category)
	case c.QueryParam("limit") != "":
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		return h.Expenses.List(ctx, limit)
	default:
		return h.Expenses.ListAll(ctx)
	}
}
