// Package settlement gates a booking's monetary fields before anything is
// persisted.  A booking carries two independent charges (the primary
// theatre charge and an optional snack add-on) and each must reconcile:
// the cash and UPI portions have to add up to the declared total.  The
// checks are pure and synchronous; the package never logs and never
// touches storage.
//
// Amounts arrive as float64 parsed from decimal strings, so reconciliation
// uses a fixed tolerance rather than exact equality.  Values are gated,
// never normalized or rounded.
package settlement

import (
	"fmt"
	"math"
)

// Tolerance is the absolute slack, in currency units, allowed between a
// declared total and the sum of its cash and UPI portions.  It absorbs
// float noise from decimal string parsing; splits further apart than this
// are genuine mismatches.
const Tolerance = 0.01

// Error kinds returned by Validate and Rebalance.
const (
	KindNegativeAmount            = "NEGATIVE_AMOUNT"
	KindInvalidGuestCount         = "INVALID_GUEST_COUNT"
	KindPrimarySettlementMismatch = "PRIMARY_SETTLEMENT_MISMATCH"
	KindSnackSettlementMismatch   = "SNACK_SETTLEMENT_MISMATCH"
)

// User-facing messages for the two mismatch kinds.  Booking forms display
// these verbatim, so the wording is part of the contract.
const (
	MsgPrimaryMismatch = "Cash + UPI must equal total amount"
	MsgSnacksMismatch  = "Snacks cash + UPI must equal snacks amount"
)

// Input is a proposed booking as declared by the caller.  Type coercion
// from request bodies happens at the handler boundary; this package only
// sees already-typed values.  Missing snack fields default to zero.
type Input struct {
	TheatreName  string  `json:"theatreName"`
	TimeSlot     string  `json:"timeSlot"`
	BookingDate  string  `json:"bookingDate"`
	Guests       int     `json:"guests"`
	PhoneNumber  string  `json:"phoneNumber,omitempty"`
	TotalAmount  float64 `json:"totalAmount"`
	CashAmount   float64 `json:"cashAmount"`
	UpiAmount    float64 `json:"upiAmount"`
	SnacksAmount float64 `json:"snacksAmount"`
	SnacksCash   float64 `json:"snacksCash"`
	SnacksUpi    float64 `json:"snacksUpi"`
}

// Error is a structured validation failure.  Kind identifies the rule that
// tripped; Message is safe to surface to the user as-is.  For mismatch
// kinds, Declared and Paid carry both sides of the failed equation and
// Delta their absolute difference.
type Error struct {
	Kind     string  `json:"kind"`
	Message  string  `json:"message"`
	Declared float64 `json:"declared,omitempty"`
	Paid     float64 `json:"paid,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
}

func (e *Error) Error() string {
	if e.Delta > 0 {
		return fmt.Sprintf("%s: %s (declared %.2f, paid %.2f, delta %.2f)",
			e.Kind, e.Message, e.Declared, e.Paid, e.Delta)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Validate checks that the declared payment splits reconcile against the
// declared totals.  On success the input is returned unchanged.  Checks
// run in a fixed order and the first failure wins:
//
//  1. no monetary field may be negative (NaN counts as negative);
//  2. guests must be at least 1;
//  3. cash + UPI must equal the total within Tolerance;
//  4. when snacksAmount > 0, snacks cash + UPI must equal it within
//     Tolerance.  A zero snack total skips the snack check entirely,
//     whatever the split fields say.
//
// The two charges are gated separately on purpose: snacks settle on their
// own, and folding them into the primary equation would let an imbalance
// in one hide behind a balance in the other.
func Validate(in Input) (Input, *Error) {
	for _, v := range []float64{
		in.TotalAmount, in.CashAmount, in.UpiAmount,
		in.SnacksAmount, in.SnacksCash, in.SnacksUpi,
	} {
		if v < 0 || math.IsNaN(v) {
			return in, &Error{Kind: KindNegativeAmount, Message: "amounts must not be negative"}
		}
	}

	if in.Guests < 1 {
		return in, &Error{Kind: KindInvalidGuestCount, Message: "at least one guest is required"}
	}

	paid := in.CashAmount + in.UpiAmount
	if delta := math.Abs(paid - in.TotalAmount); delta > Tolerance {
		return in, &Error{
			Kind:     KindPrimarySettlementMismatch,
			Message:  MsgPrimaryMismatch,
			Declared: in.TotalAmount,
			Paid:     paid,
			Delta:    delta,
		}
	}

	if in.SnacksAmount > 0 {
		snacksPaid := in.SnacksCash + in.SnacksUpi
		if delta := math.Abs(snacksPaid - in.SnacksAmount); delta > Tolerance {
			return in, &Error{
				Kind:     KindSnackSettlementMismatch,
				Message:  MsgSnacksMismatch,
				Declared: in.SnacksAmount,
				Paid:     snacksPaid,
				Delta:    delta,
			}
		}
	}

	return in, nil
}
