package settlement

import "fmt"

// Field names a single monetary split field edited interactively.
type Field string

// Fields accepted by Rebalance.
const (
	FieldCash       Field = "cashAmount"
	FieldUpi        Field = "upiAmount"
	FieldSnacksCash Field = "snacksCash"
	FieldSnacksUpi  Field = "snacksUpi"
)

// Rebalance recomputes the complement of one edited split field and then
// runs the full Validate pass.  The anchor is always the declared total of
// the charge the field belongs to: editing cashAmount recomputes upiAmount
// as max(0, totalAmount-cashAmount), and so on for the other three fields.
//
// This is a UX convenience for interactive booking forms only.  It must
// never be used to repair an inconsistent stored record; headless callers
// go straight through Validate.
func Rebalance(in Input, changed Field) (Input, error) {
	switch changed {
	case FieldCash:
		in.UpiAmount = complement(in.TotalAmount, in.CashAmount)
	case FieldUpi:
		in.CashAmount = complement(in.TotalAmount, in.UpiAmount)
	case FieldSnacksCash:
		in.SnacksUpi = complement(in.SnacksAmount, in.SnacksCash)
	case FieldSnacksUpi:
		in.SnacksCash = complement(in.SnacksAmount, in.SnacksUpi)
	default:
		return in, fmt.Errorf("unknown field %q", changed)
	}
	out, verr := Validate(in)
	if verr != nil {
		return out, verr
	}
	return out, nil
}

func complement(anchor, changed float64) float64 {
	c := anchor - changed
	if c < 0 {
		return 0
	}
	return c
}
