package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rosae/theatre-ops/internal/model"
)

// ConfigRepo reads and writes the configurations key-value table.  The
// theatre and time-slot catalogs are stored as JSON arrays under fixed
// keys.  Nothing re-validates existing bookings when a catalog entry is
// removed.
type ConfigRepo struct{ db *sql.DB }

func NewConfigRepo(db *sql.DB) *ConfigRepo { return &ConfigRepo{db: db} }

const (
	keyTheatres  = "theatres"
	keyTimeSlots = "time_slots"
)

// GetCatalogs returns the stored catalogs, falling back to the defaults
// for any key an admin has not saved yet.
func (r *ConfigRepo) GetCatalogs(ctx context.Context) (model.Catalogs, error) {
	cat := model.DefaultCatalogs()
	if v, err := r.get(ctx, keyTheatres); err != nil {
		return cat, err
	} else if v != nil {
		cat.Theatres = v
	}
	if v, err := r.get(ctx, keyTimeSlots); err != nil {
		return cat, err
	} else if v != nil {
		cat.TimeSlots = v
	}
	return cat, nil
}

// UpdateCatalogs stores both catalogs, stamping who changed them.
func (r *ConfigRepo) UpdateCatalogs(ctx context.Context, cat model.Catalogs, updatedBy string) error {
	if err := r.set(ctx, keyTheatres, cat.Theatres, updatedBy); err != nil {
		return err
	}
	return r.set(ctx, keyTimeSlots, cat.TimeSlots, updatedBy)
}

func (r *ConfigRepo) get(ctx context.Context, key string) ([]string, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM configurations WHERE config_key=? LIMIT 1", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ConfigRepo) set(ctx context.Context, key string, values []string, updatedBy string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO configurations (config_key, value, updated_by)
		VALUES (?,?,?)
		ON DUPLICATE KEY UPDATE value=VALUES(value), updated_by=VALUES(updated_by), updated_at=NOW()`,
		key, string(raw), updatedBy)
	return err
}
