package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

// ActivityRepo appends to and reads the audit trail.  Rows are never
// updated or deleted; for hard-deleted resources the trail is the only
// surviving record.
type ActivityRepo struct{ db *sql.DB }

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{db: db} }

// Log appends one entry.  resourceID and details may be empty.
func (r *ActivityRepo) Log(ctx context.Context, userID, action, resourceType, resourceID, details string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO activity_logs
		(id, user_id, action, resource_type, resource_id, details)
		VALUES (?,?,?,?,?,?)`,
		uuid.NewString(), userID, action, resourceType, resourceID, details)
	return err
}

// List returns up to limit entries, newest first.
func (r *ActivityRepo) List(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, `SELECT
		id, user_id, action, resource_type, resource_id, details, created_at
		FROM activity_logs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ActivityLog, 0, limit)
	for rows.Next() {
		var a model.ActivityLog
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.ResourceType,
			&a.ResourceID, &a.Details, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
