// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingRecordedEvent is published after a booking passes settlement
// validation and is persisted.  It carries enough for downstream
// consumers (audit trail, notifications, calendar sync) to act without
// querying the primary database.
type BookingRecordedEvent struct {
	BookingID    string  `json:"booking_id"`
	TheatreName  string  `json:"theatre_name"`
	TimeSlot     string  `json:"time_slot"`
	BookingDate  string  `json:"booking_date"`
	Guests       int     `json:"guests"`
	TotalAmount  float64 `json:"total_amount"`
	SnacksAmount float64 `json:"snacks_amount"`
	CreatedBy    string  `json:"created_by"`
	RecordedAt   string  `json:"recorded_at"`
}

// BookingRemovedEvent is published when a booking row is hard-deleted.
// The reason code is the only place outside the activity log where the
// deletion rationale survives.
type BookingRemovedEvent struct {
	BookingID   string `json:"booking_id"`
	TheatreName string `json:"theatre_name"`
	BookingDate string `json:"booking_date"`
	Reason      string `json:"reason"`
	Comment     string `json:"comment,omitempty"`
	RemovedBy   string `json:"removed_by"`
	RemovedAt   string `json:"removed_at"`
}
