package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

type ExpenseRepo struct{ db *sql.DB }

func NewExpenseRepo(db *sql.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

const expenseColumns = `id, category, description, amount,
	DATE_FORMAT(expense_date, '%Y-%m-%d'), created_by, created_at`

// Create inserts an expense and populates its generated id and timestamp.
func (r *ExpenseRepo) Create(ctx context.Context, e *model.Expense) error {
	e.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, `INSERT INTO expenses
		(id, category, description, amount, expense_date, created_by)
		VALUES (?,?,?,?,?,?)`,
		e.ID, e.Category, e.Description, e.Amount, e.ExpenseDate, e.CreatedBy)
	if err != nil {
		return err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id=? LIMIT 1", e.ID)
	return row.Scan(&e.ID, &e.Category, &e.Description, &e.Amount,
		&e.ExpenseDate, &e.CreatedBy, &e.CreatedAt)
}

// List returns up to limit expenses, newest first.
func (r *ExpenseRepo) List(ctx context.Context, limit int) ([]model.Expense, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// ListByDateRange returns expenses inside the inclusive [start, end]
// range, most recent date first.
func (r *ExpenseRepo) ListByDateRange(ctx context.Context, start, end string) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE expense_date BETWEEN ? AND ? ORDER BY expense_date DESC",
		start, end)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// ListByCategory returns all expenses in a category, most recent first.
func (r *ExpenseRepo) ListByCategory(ctx context.Context, category string) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE category=? ORDER BY expense_date DESC",
		category)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// ListAll returns every expense, most recent date first.  Used by the
// CSV export when no filter is given.
func (r *ExpenseRepo) ListAll(ctx context.Context) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses ORDER BY expense_date DESC")
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

func collectExpenses(rows *sql.Rows) ([]model.Expense, error) {
	defer rows.Close()
	out := make([]model.Expense, 0, 32)
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount,
			&e.ExpenseDate, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
