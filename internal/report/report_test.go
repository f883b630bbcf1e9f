package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/stats"
)

func TestWrite(t *testing.T) {
	today := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)
	period := stats.Period{Month: time.March, Year: 2024}

	data := model.FinanceData{
		Income: []model.IncomeEntry{
			{ID: "income-1", Amount: 1000000, Category: "Salary", Date: "2024-03-01", Description: "March"},
		},
		Expenses: []model.ExpenseEntry{
			{ID: "expense-1", Amount: 250000, Category: "Rent", Type: model.ExpenseFixed, Date: "2024-03-05"},
		},
	}

	var b strings.Builder
	require.NoError(t, Write(&b, data, model.DefaultSettings(), period, today))
	html := b.String()

	assert.Contains(t, html, "Pennylog - Financial Report")
	assert.Contains(t, html, "March 2024")
	assert.Contains(t, html, "Monthly Income")
	assert.Contains(t, html, "Rp1.000.000")
	assert.Contains(t, html, "Salary")
	assert.Contains(t, html, "fixed")
	assert.Contains(t, html, "No savings data", "empty collections get the placeholder")
	assert.NotContains(t, html, "No income data")
}

func TestWriteEmptyPeriod(t *testing.T) {
	today := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)
	period := stats.Period{Month: time.January, Year: 2020}

	var b strings.Builder
	require.NoError(t, Write(&b, model.NewFinanceData(), model.DefaultSettings(), period, today))
	html := b.String()

	assert.Contains(t, html, "No income data")
	assert.Contains(t, html, "No expense data")
	assert.Contains(t, html, "No savings data")
	assert.Contains(t, html, "January 2020")
}
