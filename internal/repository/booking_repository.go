package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

// BookingRepo provides CRUD over the bookings ledger.  Settlement
// validation happens before anything reaches this layer; the repository
// stores what it is given.  booking_date is a DATE column and is always
// read back in "2006-01-02" form.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, theatre_name, time_slot,
	DATE_FORMAT(booking_date, '%Y-%m-%d'), guests, phone_number,
	total_amount, cash_amount, upi_amount,
	snacks_amount, snacks_cash, snacks_upi,
	created_by, created_at, updated_at`

// Create inserts a booking and populates its generated id and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	b.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, `INSERT INTO bookings
		(id, theatre_name, time_slot, booking_date, guests, phone_number,
		 total_amount, cash_amount, upi_amount,
		 snacks_amount, snacks_cash, snacks_upi, created_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.TheatreName, b.TimeSlot, b.BookingDate, b.Guests, b.PhoneNumber,
		b.TotalAmount, b.CashAmount, b.UpiAmount,
		b.SnacksAmount, b.SnacksCash, b.SnacksUpi, b.CreatedBy)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// GetByID fetches a single booking.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return b, ErrNotFound
	}
	return b, err
}

// List returns up to limit bookings, newest first.
func (r *BookingRepo) List(ctx context.Context, limit int) ([]model.Booking, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListAll returns the full ledger, oldest first.  Analytics aggregates
// over this snapshot.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListByDateRange returns bookings whose booking date falls inside the
// inclusive [start, end] range, most recent date first.
func (r *BookingRepo) ListByDateRange(ctx context.Context, start, end string) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE booking_date BETWEEN ? AND ? ORDER BY booking_date DESC",
		start, end)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListByDate returns the bookings recorded for one calendar date.
func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE booking_date=?", date)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListSince returns bookings on or after the given date.  Used to bound
// the snapshot handed to the daily revenue aggregation.
func (r *BookingRepo) ListSince(ctx context.Context, date string) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE booking_date>=?", date)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// Update rewrites a booking's mutable fields and stamps updated_at.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET
		theatre_name=?, time_slot=?, booking_date=?, guests=?, phone_number=?,
		total_amount=?, cash_amount=?, upi_amount=?,
		snacks_amount=?, snacks_cash=?, snacks_upi=?, updated_at=NOW()
		WHERE id=?`,
		b.TheatreName, b.TimeSlot, b.BookingDate, b.Guests, b.PhoneNumber,
		b.TotalAmount, b.CashAmount, b.UpiAmount,
		b.SnacksAmount, b.SnacksCash, b.SnacksUpi, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	got, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// Delete hard-deletes a booking row.  The delete reason lives only in the
// activity log written by the handler.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row *sql.Row) (model.Booking, error) {
	var (
		b       model.Booking
		phone   sql.NullString
		updated sql.NullTime
	)
	err := row.Scan(&b.ID, &b.TheatreName, &b.TimeSlot, &b.BookingDate,
		&b.Guests, &phone,
		&b.TotalAmount, &b.CashAmount, &b.UpiAmount,
		&b.SnacksAmount, &b.SnacksCash, &b.SnacksUpi,
		&b.CreatedBy, &b.CreatedAt, &updated)
	if err != nil {
		return b, err
	}
	if phone.Valid {
		b.PhoneNumber = &phone.String
	}
	if updated.Valid {
		b.UpdatedAt = &updated.Time
	}
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	out := make([]model.Booking, 0, 32)
	for rows.Next() {
		var (
			b       model.Booking
			phone   sql.NullString
			updated sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.TheatreName, &b.TimeSlot, &b.BookingDate,
			&b.Guests, &phone,
			&b.TotalAmount, &b.CashAmount, &b.UpiAmount,
			&b.SnacksAmount, &b.SnacksCash, &b.SnacksUpi,
			&b.CreatedBy, &b.CreatedAt, &updated); err != nil {
			return nil, err
		}
		if phone.Valid {
			b.PhoneNumber = &phone.String
		}
		if updated.Valid {
			b.UpdatedAt = &updated.Time
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
