package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

type LeaveRepo struct{ db *sql.DB }

func NewLeaveRepo(db *sql.DB) *LeaveRepo { return &LeaveRepo{db: db} }

const leaveColumns = `id, user_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	reason, status, reviewed_by, reviewed_at, created_at`

// Create inserts a pending leave application.
func (r *LeaveRepo) Create(ctx context.Context, l *model.LeaveApplication) error {
	l.ID = uuid.NewString()
	l.Status = model.LeaveStatusPending
	_, err := r.db.ExecContext(ctx, `INSERT INTO leave_applications
		(id, user_id, start_date, end_date, reason, status)
		VALUES (?,?,?,?,?,?)`,
		l.ID, l.UserID, l.StartDate, l.EndDate, l.Reason, l.Status)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	*l = got
	return nil
}

// GetByID fetches one application.
func (r *LeaveRepo) GetByID(ctx context.Context, id string) (model.LeaveApplication, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+leaveColumns+" FROM leave_applications WHERE id=? LIMIT 1", id)
	l, err := scanLeave(row)
	if err == sql.ErrNoRows {
		return l, ErrNotFound
	}
	return l, err
}

// List returns all applications, newest first.
func (r *LeaveRepo) List(ctx context.Context) ([]model.LeaveApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+leaveColumns+" FROM leave_applications ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.LeaveApplication, 0, 16)
	for rows.Next() {
		var (
			l          model.LeaveApplication
			reviewedBy sql.NullString
			reviewedAt sql.NullTime
		)
		if err := rows.Scan(&l.ID, &l.UserID, &l.StartDate, &l.EndDate,
			&l.Reason, &l.Status, &reviewedBy, &reviewedAt, &l.CreatedAt); err != nil {
			return nil, err
		}
		if reviewedBy.Valid {
			l.ReviewedBy = &reviewedBy.String
		}
		if reviewedAt.Valid {
			l.ReviewedAt = &reviewedAt.Time
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateStatus records the review decision (approved or rejected) and who
// made it, then returns the updated row.
func (r *LeaveRepo) UpdateStatus(ctx context.Context, id, status, reviewedBy string) (model.LeaveApplication, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE leave_applications SET status=?, reviewed_by=?, reviewed_at=NOW() WHERE id=?",
		status, reviewedBy, id)
	if err != nil {
		return model.LeaveApplication{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.LeaveApplication{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func scanLeave(row *sql.Row) (model.LeaveApplication, error) {
	var (
		l          model.LeaveApplication
		reviewedBy sql.NullString
		reviewedAt sql.NullTime
	)
	err := row.Scan(&l.ID, &l.UserID, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &reviewedBy, &reviewedAt, &l.CreatedAt)
	if err != nil {
		return l, err
	}
	if reviewedBy.Valid {
		l.ReviewedBy = &reviewedBy.String
	}
	if reviewedAt.Valid {
		l.ReviewedAt = &reviewedAt.Time
	}
	return l, nil
}
