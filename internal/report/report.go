// Package report renders a printable monthly report as a standalone
// HTML document.
package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/haynafi/Pennylog/internal/model"
	"github.com/haynafi/Pennylog/internal/money"
	"github.com/haynafi/Pennylog/internal/stats"
)

const reportTemplate = `<!DOCTYPE html>
<html>
  <head>
    <title>{{.AppName}} - Report</title>
    <style>
      * { margin: 0; padding: 0; box-sizing: border-box; }
      body { font-family: Arial, sans-serif; padding: 20px; }
      h1 { margin-bottom: 10px; font-size: 24px; }
      .date { color: #666; margin-bottom: 20px; }
      .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 10px; margin-bottom: 20px; }
      .stat { padding: 15px; border: 1px solid #ddd; border-radius: 5px; }
      .stat-label { font-size: 12px; color: #666; }
      .stat-value { font-size: 18px; font-weight: bold; margin-top: 5px; }
      table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
      th { background: #f5f5f5; padding: 10px; text-align: left; border-bottom: 2px solid #ddd; }
      td { padding: 10px; border-bottom: 1px solid #ddd; }
      h2 { font-size: 16px; margin-top: 20px; margin-bottom: 10px; }
      .no-data { text-align: center; color: #999; padding: 20px; }
      @media print { body { padding: 0; } }
    </style>
  </head>
  <body>
    <h1>{{.AppName}} - Financial Report</h1>
    <p class="date">{{.PeriodLabel}}</p>

    <div class="stats">
      {{range .Stats}}
      <div class="stat">
        <div class="stat-label">{{.Label}}</div>
        <div class="stat-value">{{.Value}}</div>
      </div>
      {{end}}
    </div>

    <h2>Income Transactions</h2>
    {{if .Income}}
    <table>
      <thead>
        <tr><th>Date</th><th>Category</th><th>Description</th><th>Amount</th></tr>
      </thead>
      <tbody>
        {{range .Income}}
        <tr><td>{{.Date}}</td><td>{{.Category}}</td><td>{{.Description}}</td><td>{{.Amount}}</td></tr>
        {{end}}
      </tbody>
    </table>
    {{else}}<p class="no-data">No income data</p>{{end}}

    <h2>Expenses</h2>
    {{if .Expenses}}
    <table>
      <thead>
        <tr><th>Date</th><th>Type</th><th>Category</th><th>Description</th><th>Amount</th></tr>
      </thead>
      <tbody>
        {{range .Expenses}}
        <tr><td>{{.Date}}</td><td>{{.Type}}</td><td>{{.Category}}</td><td>{{.Description}}</td><td>{{.Amount}}</td></tr>
        {{end}}
      </tbody>
    </table>
    {{else}}<p class="no-data">No expense data</p>{{end}}

    <h2>Savings</h2>
    {{if .Savings}}
    <table>
      <thead>
        <tr><th>Date</th><th>Description</th><th>Amount</th></tr>
      </thead>
      <tbody>
        {{range .Savings}}
        <tr><td>{{.Date}}</td><td>{{.Description}}</td><td>{{.Amount}}</td></tr>
        {{end}}
      </tbody>
    </table>
    {{else}}<p class="no-data">No savings data</p>{{end}}
  </body>
</html>
`

type statCard struct {
	Label string
	Value string
}

type row struct {
	Date        string
	Type        string
	Category    string
	Description string
	Amount      string
}

type reportData struct {
	AppName     string
	PeriodLabel string
	Stats       []statCard
	Income      []row
	Expenses    []row
	Savings     []row
}

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Write renders the report for a period to w. It reads computed
// aggregates and entry lists only; nothing is mutated.
func Write(w io.Writer, data model.FinanceData, settings model.Settings, period stats.Period, today time.Time) error {
	summary := stats.Compute(data, settings, period, today)
	sym := settings.CurrencySymbol

	rd := reportData{
		AppName:     settings.AppName,
		PeriodLabel: period.String(),
		Stats: []statCard{
			{Label: "Monthly Income", Value: money.Format(sym, summary.MonthlyIncome)},
			{Label: "Daily Expense", Value: money.Format(sym, summary.DailyExpenses)},
			{Label: "Monthly Expense", Value: money.Format(sym, summary.MonthlyExpenses)},
			{Label: "Remaining Budget", Value: money.Format(sym, summary.RemainingBudget)},
			{Label: "Monthly Savings", Value: money.Format(sym, summary.MonthlySavings)},
		},
	}

	for _, e := range summary.Income {
		rd.Income = append(rd.Income, row{
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      money.Format(sym, e.Amount),
		})
	}
	for _, e := range summary.Expenses {
		rd.Expenses = append(rd.Expenses, row{
			Date:        e.Date,
			Type:        string(e.Type),
			Category:    e.Category,
			Description: e.Description,
			Amount:      money.Format(sym, e.Amount),
		})
	}
	for _, e := range summary.Savings {
		rd.Savings = append(rd.Savings, row{
			Date:        e.Date,
			Description: e.Description,
			Amount:      money.Format(sym, e.Amount),
		})
	}

	if err := tmpl.Execute(w, rd); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
