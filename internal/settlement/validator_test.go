package settlement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/settlement"
)

func validInput() settlement.Input {
	return settlement.Input{
		TheatreName: "Screen 1",
		TimeSlot:    "2:00 PM - 4:00 PM",
		BookingDate: "2026-08-30",
		Guests:      4,
		TotalAmount: 1200,
		CashAmount:  800,
		UpiAmount:   400,
	}
}

func TestValidateAcceptsBalancedBooking(t *testing.T) {
	in := validInput()
	in.SnacksAmount = 300
	in.SnacksCash = 200
	in.SnacksUpi = 100

	out, err := settlement.Validate(in)
	require.Nil(t, err)
	assert.Equal(t, in, out, "validator must return the input unchanged")
}

func TestValidateRoundTrip(t *testing.T) {
	// Any non-negative cash/upi pair reconciles against its own sum.
	pairs := []struct{ cash, upi float64 }{
		{0, 0},
		{100, 0},
		{0, 250.50},
		{333.33, 666.67},
		{0.01, 0.02},
		{99999.99, 1},
	}
	for _, p := range pairs {
		in := validInput()
		in.CashAmount = p.cash
		in.UpiAmount = p.upi
		in.TotalAmount = p.cash + p.upi

		_, err := settlement.Validate(in)
		assert.Nil(t, err, "cash=%v upi=%v", p.cash, p.upi)
	}
}

func TestValidateToleranceBoundary(t *testing.T) {
	in := validInput()
	in.TotalAmount = 100
	in.CashAmount = 60

	// delta 0.005 is within the 0.01 band
	in.UpiAmount = 39.995
	_, err := settlement.Validate(in)
	assert.Nil(t, err)

	// delta 0.02 is outside it
	in.UpiAmount = 39.98
	_, err = settlement.Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, settlement.KindPrimarySettlementMismatch, err.Kind)
	assert.Equal(t, "Cash + UPI must equal total amount", err.Message)
	assert.InDelta(t, 0.02, err.Delta, 1e-9)
	assert.Equal(t, 100.0, err.Declared)
	assert.InDelta(t, 99.98, err.Paid, 1e-9)
}

func TestValidatePrimaryMismatch(t *testing.T) {
	in := validInput()
	in.UpiAmount = 300 // 800 + 300 != 1200

	_, err := settlement.Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, settlement.KindPrimarySettlementMismatch, err.Kind)
	assert.Equal(t, "Cash + UPI must equal total amount", err.Message)
}

func TestValidateSnackMismatch(t *testing.T) {
	in := validInput()
	in.SnacksAmount = 300
	in.SnacksCash = 200
	in.SnacksUpi = 50 // 250 != 300

	_, err := settlement.Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, settlement.KindSnackSettlementMismatch, err.Kind)
	assert.Equal(t, "Snacks cash + UPI must equal snacks amount", err.Message)
	assert.InDelta(t, 50, err.Delta, 1e-9)
}

func TestValidateSkipsSnackCheckWhenNoSnacks(t *testing.T) {
	// With snacksAmount == 0 the snack equation is never evaluated, even
	// when the split fields disagree with it.
	in := validInput()
	in.SnacksAmount = 0
	in.SnacksCash = 75
	in.SnacksUpi = 25

	_, err := settlement.Validate(in)
	assert.Nil(t, err)
}

func TestValidateRejectsNegativeAmounts(t *testing.T) {
	fields := []func(*settlement.Input){
		func(in *settlement.Input) { in.TotalAmount = -1 },
		func(in *settlement.Input) { in.CashAmount = -0.01 },
		func(in *settlement.Input) { in.UpiAmount = -100 },
		func(in *settlement.Input) { in.SnacksAmount = -5 },
		func(in *settlement.Input) { in.SnacksCash = -5 },
		func(in *settlement.Input) { in.SnacksUpi = -5 },
	}
	for i, mutate := range fields {
		in := validInput()
		mutate(&in)
		_, err := settlement.Validate(in)
		require.NotNil(t, err, "case %d", i)
		assert.Equal(t, settlement.KindNegativeAmount, err.Kind, "case %d", i)
	}
}

func TestValidateRejectsBadGuestCount(t *testing.T) {
	for _, guests := range []int{0, -1, -50} {
		in := validInput()
		in.Guests = guests
		_, err := settlement.Validate(in)
		require.NotNil(t, err)
		assert.Equal(t, settlement.KindInvalidGuestCount, err.Kind)
	}
}

func TestValidateTreatsNaNAsNegative(t *testing.T) {
	// NaN must be caught at the gate, not propagated through arithmetic.
	in := validInput()
	in.CashAmount = math.NaN()

	_, err := settlement.Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, settlement.KindNegativeAmount, err.Kind)
}

func TestErrorString(t *testing.T) {
	_, err := settlement.Validate(settlement.Input{
		Guests: 2, TotalAmount: 100, CashAmount: 10, UpiAmount: 10,
	})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), settlement.KindPrimarySettlementMismatch)
	assert.Contains(t, err.Error(), "delta 80.00")
}
