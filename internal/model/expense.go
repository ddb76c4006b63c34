package model

import "time"

// Expense is an operational cost entry recorded by staff.  Corresponds to
// a row in the `expenses` table.
type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ExpenseDate string    `json:"expenseDate"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
