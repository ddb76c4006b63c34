package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosae/theatre-ops/internal/model"
)

type CalendarRepo struct{ db *sql.DB }

func NewCalendarRepo(db *sql.DB) *CalendarRepo { return &CalendarRepo{db: db} }

const calendarColumns = `id, booking_id, google_calendar_event_id, title,
	description, start_time, end_time, location, status, created_at, updated_at`

// Create inserts a calendar event derived from a booking.
func (r *CalendarRepo) Create(ctx context.Context, e *model.CalendarEvent) error {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = "confirmed"
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO calendar_events
		(id, booking_id, google_calendar_event_id, title, description,
		 start_time, end_time, location, status)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		e.ID, e.BookingID, e.GoogleCalendarEventID, e.Title, e.Description,
		e.StartTime, e.EndTime, e.Location, e.Status)
	return err
}

// GetByBookingID returns the event mirroring a booking.
func (r *CalendarRepo) GetByBookingID(ctx context.Context, bookingID string) (model.CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+calendarColumns+" FROM calendar_events WHERE booking_id=? LIMIT 1", bookingID)
	var (
		e         model.CalendarEvent
		googleID  sql.NullString
		updatedAt sql.NullTime
	)
	err := row.Scan(&e.ID, &e.BookingID, &googleID, &e.Title, &e.Description,
		&e.StartTime, &e.EndTime, &e.Location, &e.Status, &e.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return e, ErrNotFound
	}
	if err != nil {
		return e, err
	}
	if googleID.Valid {
		e.GoogleCalendarEventID = &googleID.String
	}
	if updatedAt.Valid {
		e.UpdatedAt = &updatedAt.Time
	}
	return e, nil
}

// Update rewrites the derived fields of an event.
func (r *CalendarRepo) Update(ctx context.Context, e *model.CalendarEvent) error {
	res, err := r.db.ExecContext(ctx, `UPDATE calendar_events SET
		title=?, description=?, start_time=?, end_time=?, location=?, status=?,
		google_calendar_event_id=?, updated_at=NOW()
		WHERE id=?`,
		e.Title, e.Description, e.StartTime, e.EndTime, e.Location, e.Status,
		e.GoogleCalendarEventID, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByBookingID removes the event tied to a booking.  Missing rows
// are not an error: a booking may never have had a calendar event if the
// stub failed at creation.
func (r *CalendarRepo) DeleteByBookingID(ctx context.Context, bookingID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM calendar_events WHERE booking_id=?", bookingID)
	return err
}
