package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

type TicketRepo struct{ db *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = "id, title, description, status, assigned_to, created_by, created_at, updated_at"

// Create inserts a ticket in the open state.
func (r *TicketRepo) Create(ctx context.Context, t *model.CustomerTicket) error {
	t.ID = uuid.NewString()
	t.Status = model.TicketStatusOpen
	_, err := r.db.ExecContext(ctx, `INSERT INTO customer_tickets
		(id, title, description, status, assigned_to, created_by)
		VALUES (?,?,?,?,?,?)`,
		t.ID, t.Title, t.Description, t.Status, t.AssignedTo, t.CreatedBy)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = got
	return nil
}

// GetByID fetches one ticket.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (model.CustomerTicket, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+ticketColumns+" FROM customer_tickets WHERE id=? LIMIT 1", id)
	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return t, ErrNotFound
	}
	return t, err
}

// List returns all tickets, newest first.
func (r *TicketRepo) List(ctx context.Context) ([]model.CustomerTicket, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+ticketColumns+" FROM customer_tickets ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CustomerTicket, 0, 16)
	for rows.Next() {
		var (
			t          model.CustomerTicket
			assignedTo sql.NullString
			updatedAt  sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status,
			&assignedTo, &t.CreatedBy, &t.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		if assignedTo.Valid {
			t.AssignedTo = &assignedTo.String
		}
		if updatedAt.Valid {
			t.UpdatedAt = &updatedAt.Time
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateStatus moves a ticket through its lifecycle and optionally
// reassigns it, then returns the updated row.
func (r *TicketRepo) UpdateStatus(ctx context.Context, id, status string, assignedTo *string) (model.CustomerTicket, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE customer_tickets SET status=?, assigned_to=?, updated_at=NOW() WHERE id=?",
		status, assignedTo, id)
	if err != nil {
		return model.CustomerTicket{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.CustomerTicket{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func scanTicket(row *sql.Row) (model.CustomerTicket, error) {
	var (
		t          model.CustomerTicket
		assignedTo sql.NullString
		updatedAt  sql.NullTime
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status,
		&assignedTo, &t.CreatedBy, &t.CreatedAt, &updatedAt)
	if err != nil {
		return t, err
	}
	if assignedTo.Valid {
		t.AssignedTo = &assignedTo.String
	}
	if updatedAt.Valid {
		t.UpdatedAt = &updatedAt.Time
	}
	return t, nil
}
