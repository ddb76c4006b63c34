package model

import "time"

// CalendarEvent mirrors a booking onto the shared staff calendar.  The
// event is derived from the booking's date and time slot and is created,
// updated and deleted alongside it.  GoogleCalendarEventID is populated
// once the external calendar integration acknowledges the event; it stays
// nil while the integration is stubbed.
type CalendarEvent struct {
	ID                    string     `json:"id"`
	BookingID             string     `json:"bookingId"`
	GoogleCalendarEventID *string    `json:"googleCalendarEventId,omitempty"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	StartTime             time.Time  `json:"startTime"`
	EndTime               time.Time  `json:"endTime"`
	Location              string     `json:"location"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty"`
}
