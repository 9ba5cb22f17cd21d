// Package report derives dashboard and reporting figures from store
// snapshots. Everything here is a pure function of its inputs: no
// caching, no incremental state, recomputed on every call. Callers
// pass the reference time explicitly so "current month" is testable.
package report

import (
	"fmt"
	"sort"
	"time"

	"acontafacil/internal/core"
)

// CashFlowDataPoint is one month of the trailing cash-flow series.
// Month carries only the display label; grouping never uses it.
type CashFlowDataPoint struct {
	Month    string     `json:"month"`
	Income   core.Money `json:"income"`
	Expenses core.Money `json:"expenses"`
	Balance  core.Money `json:"balance"`
}

// CategoryReportItem is one row of the current-month expense breakdown.
type CategoryReportItem struct {
	Category   core.Category `json:"category"`
	Amount     core.Money    `json:"amount"`
	Percentage float64       `json:"percentage"`
}

// MonthTotals holds the income and expense sums of a single calendar
// month.
type MonthTotals struct {
	Income   core.Money `json:"income"`
	Expenses core.Money `json:"expenses"`
}

// monthKey partitions transactions by calendar month. Keying by the
// numeric pair instead of a formatted label keeps two Januaries five
// years apart from colliding.
type monthKey struct {
	Year  int
	Month time.Month
}

func keyOf(t time.Time) monthKey {
	return monthKey{Year: t.Year(), Month: t.Month()}
}

// CurrentMonthTotals sums income and expense amounts for the calendar
// month of now. Empty partitions report zero.
func CurrentMonthTotals(txs []core.Transaction, now time.Time) MonthTotals {
	want := keyOf(now)
	var totals MonthTotals
	for _, t := range txs {
		if keyOf(t.Date) != want {
			continue
		}
		switch t.Type {
		case core.Income:
			totals.Income.Cents += t.Amount.Cents
		case core.Expense:
			totals.Expenses.Cents += t.Amount.Cents
		}
	}
	return totals
}

// OverallBalance is the all-time income minus expense sum, the "saldo
// atual" figure of the dashboard.
func OverallBalance(txs []core.Transaction) core.Money {
	var cents int64
	for _, t := range txs {
		cents += t.SignedCents()
	}
	return core.Money{Cents: cents}
}

// CashFlowSeries returns one point per calendar month for the trailing
// window ending at now, oldest first. The series always has exactly
// months points; months without transactions report zeroes.
func CashFlowSeries(txs []core.Transaction, now time.Time, months int) []CashFlowDataPoint {
	sums := make(map[monthKey]*MonthTotals)
	for _, t := range txs {
		k := keyOf(t.Date)
		mt, ok := sums[k]
		if !ok {
			mt = &MonthTotals{}
			sums[k] = mt
		}
		switch t.Type {
		case core.Income:
			mt.Income.Cents += t.Amount.Cents
		case core.Expense:
			mt.Expenses.Cents += t.Amount.Cents
		}
	}

	series := make([]CashFlowDataPoint, 0, months)
	// Anchor at the first of the month so AddDate never skips short
	// months (Jan 31 minus one month must be December, not March 3).
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		k := keyOf(m)
		var totals MonthTotals
		if mt, ok := sums[k]; ok {
			totals = *mt
		}
		series = append(series, CashFlowDataPoint{
			Month:    MonthLabel(k.Year, k.Month),
			Income:   totals.Income,
			Expenses: totals.Expenses,
			Balance:  core.Money{Cents: totals.Income.Cents - totals.Expenses.Cents},
		})
	}
	return series
}

// CategoryBreakdown groups the current-month expenses by category and
// computes each group's share of the total. Sorted descending by
// amount; equal amounts keep first-encountered order.
func CategoryBreakdown(txs []core.Transaction, now time.Time) []CategoryReportItem {
	want := keyOf(now)
	sums := make(map[core.Category]int64)
	var order []core.Category
	var total int64
	for _, t := range txs {
		if t.Type != core.Expense || keyOf(t.Date) != want {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] += t.Amount.Cents
		total += t.Amount.Cents
	}

	items := make([]CategoryReportItem, 0, len(order))
	for _, c := range order {
		amount := sums[c]
		pct := 0.0
		if total > 0 {
			pct = float64(amount) / float64(total) * 100
		}
		items = append(items, CategoryReportItem{
			Category:   c,
			Amount:     core.Money{Cents: amount},
			Percentage: pct,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.Cents > items[j].Amount.Cents
	})
	return items
}

// GoalProgress returns percent complete for a goal. Not clamped: a
// goal funded past its target reports more than 100.
func GoalProgress(g core.FinancialGoal) float64 {
	if g.TargetAmount.Cents <= 0 {
		return 0
	}
	return float64(g.CurrentAmount.Cents) / float64(g.TargetAmount.Cents) * 100
}

// Portuguese month abbreviations, as the charts label them.
var monthAbbrev = [13]string{"",
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// MonthLabel formats a month for display, e.g. "jan/24". Labels are a
// presentation concern only and play no part in grouping.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s/%02d", monthAbbrev[month], year%100)
}
