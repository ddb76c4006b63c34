package model

import "time"

// ActivityLog is an append-only audit entry written by every mutating
// handler.  Deleted resources (bookings in particular) survive only here:
// the delete reason code and comment are folded into Details.
type ActivityLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	Details      string    `json:"details"`
	CreatedAt    time.Time `json:"createdAt"`
}
