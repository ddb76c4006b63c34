// Package service holds the small pieces of domain logic that sit between
// handlers and repositories: calendar event derivation, sales report
// generation and event publishing.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rosae/theatre-ops/internal/model"
)

// slot labels follow the catalog format "10:00 AM - 12:00 PM".
const clockLayout = "3:04 PM"

// BuildCalendarEvent derives the staff-calendar event for a booking from
// its date and time-slot label.  The slot must parse as
// "<start> - <end>" in 12-hour clock form; free-text slots that do not
// parse yield an error, which callers treat as "no calendar event" rather
// than a failed booking.
func BuildCalendarEvent(b *model.Booking) (model.CalendarEvent, error) {
	start, end, err := slotWindow(b.BookingDate, b.TimeSlot)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	return model.CalendarEvent{
		BookingID:   b.ID,
		Title:       fmt.Sprintf("%s Booking - %d guests", b.TheatreName, b.Guests),
		Description: fmt.Sprintf("Theatre booking for %d guests. Total: %.2f. Created by: %s", b.Guests, b.TotalAmount, b.CreatedBy),
		StartTime:   start,
		EndTime:     end,
		Location:    b.TheatreName,
		Status:      "confirmed",
	}, nil
}

func slotWindow(date, slot string) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad booking date %q: %w", date, err)
	}
	parts := strings.SplitN(slot, " - ", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("slot %q is not a start - end range", slot)
	}
	start, err := clockAt(day, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := clockAt(day, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		// slots never span midnight in the catalog; treat an inverted
		// range as ending the next day to keep the event well-formed
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

func clockAt(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("bad clock %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
