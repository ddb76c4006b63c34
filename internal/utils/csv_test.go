package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/utils"
)

func TestExpensesCSV(t *testing.T) {
	expenses := []model.Expense{
		{ExpenseDate: "2026-08-28", Category: "maintenance", Description: "projector lamp", Amount: 4500},
		{ExpenseDate: "2026-08-29", Category: "snacks", Description: `popcorn, "butter" grade`, Amount: 999.5},
	}

	out, err := utils.ExpensesCSV(expenses)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Category,Description,Amount", lines[0])
	assert.Equal(t, "2026-08-28,maintenance,projector lamp,4500.00", lines[1])
	// descriptions with commas and quotes must stay one field
	assert.Contains(t, lines[2], `"popcorn, ""butter"" grade"`)
	assert.True(t, strings.HasSuffix(lines[2], "999.50"))
}

func TestExpensesCSVEmpty(t *testing.T) {
	out, err := utils.ExpensesCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Date,Category,Description,Amount\n", string(out))
}
