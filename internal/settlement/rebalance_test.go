package settlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/settlement"
)

func TestRebalanceCashRecomputesUpi(t *testing.T) {
	in := validInput()
	in.CashAmount = 900
	in.UpiAmount = 400 // stale; must be re-derived from the anchor

	out, err := settlement.Rebalance(in, settlement.FieldCash)
	require.NoError(t, err)
	assert.Equal(t, 300.0, out.UpiAmount)
	assert.Equal(t, 900.0, out.CashAmount)
}

func TestRebalanceUpiRecomputesCash(t *testing.T) {
	in := validInput()
	in.UpiAmount = 1200

	out, err := settlement.Rebalance(in, settlement.FieldUpi)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.CashAmount)
}

func TestRebalanceClampsComplementAtZero(t *testing.T) {
	// Overshooting the anchor leaves the complement at zero, and the
	// follow-up validation rejects the now-unbalanced booking.
	in := validInput()
	in.CashAmount = 1500 // above the 1200 total

	out, err := settlement.Rebalance(in, settlement.FieldCash)
	require.Error(t, err)
	assert.Equal(t, 0.0, out.UpiAmount)

	verr, ok := err.(*settlement.Error)
	require.True(t, ok)
	assert.Equal(t, settlement.KindPrimarySettlementMismatch, verr.Kind)
}

func TestRebalanceSnackFields(t *testing.T) {
	in := validInput()
	in.SnacksAmount = 300
	in.SnacksCash = 120

	out, err := settlement.Rebalance(in, settlement.FieldSnacksCash)
	require.NoError(t, err)
	assert.Equal(t, 180.0, out.SnacksUpi)

	out.SnacksUpi = 300
	out, err = settlement.Rebalance(out, settlement.FieldSnacksUpi)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.SnacksCash)
}

func TestRebalanceUnknownField(t *testing.T) {
	_, err := settlement.Rebalance(validInput(), settlement.Field("totalAmount"))
	assert.Error(t, err)
}
