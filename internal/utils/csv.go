package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rosae/theatre-ops/internal/model"
)

// ExpensesCSV renders expenses as a CSV attachment body with the header
// Date,Category,Description,Amount.  Amounts are formatted with two
// decimals to match how they are entered.
func ExpensesCSV(expenses []model.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Category", "Description", "Amount"}); err != nil {
		return nil, err
	}
	for _, e := range expenses {
		rec := []string{
			e.ExpenseDate,
			e.Category,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
