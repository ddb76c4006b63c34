package model

import "time"

// Booking is the central ledger entity: one private-theatre slot sold to a
// party of guests, together with how the money was collected.  The primary
// charge and the optional snack add-on are settled independently: the cash
// and UPI splits of each must reconcile against their declared totals
// (see internal/settlement).  This struct corresponds to a row in the
// `bookings` table.
//
// Fields:
//  ID           – CHAR(36) UUID primary key, generated at creation.
//  TheatreName  – venue name as drawn from the configuration catalog.
//  TimeSlot     – literal slot label ("10:00 AM - 12:00 PM"); not
//                 cross-checked against the catalog.
//  BookingDate  – calendar date of the booking, "2006-01-02" form.
//  Guests       – party size, at least 1.
//  PhoneNumber  – optional contact number.
//  TotalAmount  – declared primary charge.
//  CashAmount   – cash portion of the primary charge.
//  UpiAmount    – electronic portion of the primary charge.
//  SnacksAmount – declared snack add-on charge (0 when none).
//  SnacksCash   – cash portion of the snack charge.
//  SnacksUpi    – electronic portion of the snack charge.
//  CreatedBy    – UUID of the user who recorded the booking.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp (nil if never edited).
type Booking struct {
	ID           string     `json:"id"`
	TheatreName  string     `json:"theatreName"`
	TimeSlot     string     `json:"timeSlot"`
	BookingDate  string     `json:"bookingDate"`
	Guests       int        `json:"guests"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	TotalAmount  float64    `json:"totalAmount"`
	CashAmount   float64    `json:"cashAmount"`
	UpiAmount    float64    `json:"upiAmount"`
	SnacksAmount float64    `json:"snacksAmount"`
	SnacksCash   float64    `json:"snacksCash"`
	SnacksUpi    float64    `json:"snacksUpi"`
	CreatedBy    string     `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// DeleteReason enumerates the mandatory reason codes recorded when a
// booking row is hard-deleted.  The reason survives only in the activity
// log, never in the bookings table.
type DeleteReason string

const (
	DeleteReasonCancellation DeleteReason = "CANCELLATION"
	DeleteReasonReschedule   DeleteReason = "RESCHEDULE"
	DeleteReasonMistake      DeleteReason = "MISTAKE"
)

// Valid reports whether the reason is one of the accepted codes.
func (r DeleteReason) Valid() bool {
	switch r {
	case DeleteReasonCancellation, DeleteReasonReschedule, DeleteReasonMistake:
		return true
	}
	return false
}
