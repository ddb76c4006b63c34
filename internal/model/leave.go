package model

import "time"

// LeaveApplication is a staff leave request.  Status moves from pending
// to approved or rejected when an admin reviews it; there is no further
// lifecycle.  Corresponds to a row in the `leave_applications` table.
type LeaveApplication struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ReviewedBy *string    `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Leave application statuses.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)
