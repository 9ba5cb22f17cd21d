package report

import (
	"math"
	"testing"
	"time"

	"acontafacil/internal/core"
)

func tx(cents int64, typ core.TransactionType, cat core.Category, date time.Time) core.Transaction {
	return core.Transaction{
		ID:          core.NewID(),
		Date:        date,
		Description: "t",
		Amount:      core.Money{Cents: cents},
		Type:        typ,
		Category:    cat,
	}
}

func jan(day int) time.Time {
	return time.Date(2024, time.January, day, 12, 0, 0, 0, time.UTC)
}

// Scenario from the dashboard: viewed in January 2024, income 1000,
// expenses 400 + 100, breakdown 80%/20%.
func TestJanuaryScenario(t *testing.T) {
	now := jan(31)
	txs := []core.Transaction{
		tx(100000, core.Income, core.Salario, jan(10)),
		tx(40000, core.Expense, core.Moradia, jan(15)),
		tx(10000, core.Expense, core.Lazer, jan(20)),
	}

	totals := CurrentMonthTotals(txs, now)
	if totals.Income.Cents != 100000 {
		t.Fatalf("income = %d, want 100000", totals.Income.Cents)
	}
	if totals.Expenses.Cents != 50000 {
		t.Fatalf("expenses = %d, want 50000", totals.Expenses.Cents)
	}

	breakdown := CategoryBreakdown(txs, now)
	if len(breakdown) != 2 {
		t.Fatalf("breakdown rows = %d, want 2", len(breakdown))
	}
	if breakdown[0].Category != core.Moradia || breakdown[0].Amount.Cents != 40000 || breakdown[0].Percentage != 80.0 {
		t.Fatalf("row 0 = %+v", breakdown[0])
	}
	if breakdown[1].Category != core.Lazer || breakdown[1].Amount.Cents != 10000 || breakdown[1].Percentage != 20.0 {
		t.Fatalf("row 1 = %+v", breakdown[1])
	}

	if got := OverallBalance(txs).Cents; got != 50000 {
		t.Fatalf("overall balance = %d, want 50000", got)
	}
}

func TestEmptyListYieldsZeroes(t *testing.T) {
	now := jan(15)
	totals := CurrentMonthTotals(nil, now)
	if totals.Income.Cents != 0 || totals.Expenses.Cents != 0 {
		t.Fatalf("totals = %+v", totals)
	}
	if got := CategoryBreakdown(nil, now); len(got) != 0 {
		t.Fatalf("breakdown = %+v", got)
	}
	series := CashFlowSeries(nil, now, 6)
	if len(series) != 6 {
		t.Fatalf("series length = %d, want 6", len(series))
	}
	for _, p := range series {
		if p.Income.Cents != 0 || p.Expenses.Cents != 0 || p.Balance.Cents != 0 {
			t.Fatalf("non-zero point %+v", p)
		}
	}
	if OverallBalance(nil).Cents != 0 {
		t.Fatalf("balance must be zero")
	}
}

func TestCashFlowSeriesWindow(t *testing.T) {
	now := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(30000, core.Income, core.Salario, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
		tx(10000, core.Expense, core.Lazer, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		// Outside the window entirely.
		tx(99999, core.Income, core.Salario, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}

	series := CashFlowSeries(txs, now, 6)
	if len(series) != 6 {
		t.Fatalf("series length = %d, want 6", len(series))
	}
	labels := []string{"out/23", "nov/23", "dez/23", "jan/24", "fev/24", "mar/24"}
	for i, want := range labels {
		if series[i].Month != want {
			t.Fatalf("label %d = %q, want %q", i, series[i].Month, want)
		}
	}
	if series[3].Expenses.Cents != 10000 || series[3].Balance.Cents != -10000 {
		t.Fatalf("january point = %+v", series[3])
	}
	if series[5].Income.Cents != 30000 || series[5].Balance.Cents != 30000 {
		t.Fatalf("march point = %+v", series[5])
	}
	for _, i := range []int{0, 1, 2, 4} {
		if series[i].Income.Cents != 0 || series[i].Expenses.Cents != 0 {
			t.Fatalf("expected zero-filled month at %d: %+v", i, series[i])
		}
	}
}

// Two Januaries five years apart must never merge, which is exactly
// what a label-based grouping key would do.
func TestDistinctYearsStaySeparate(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(10000, core.Expense, core.Lazer, jan(5)),
		tx(70000, core.Expense, core.Lazer, time.Date(2019, time.January, 5, 0, 0, 0, 0, time.UTC)),
	}
	totals := CurrentMonthTotals(txs, now)
	if totals.Expenses.Cents != 10000 {
		t.Fatalf("expenses = %d, want 10000 (2019 bled into 2024)", totals.Expenses.Cents)
	}
}

func TestPercentagesSumToHundred(t *testing.T) {
	now := jan(31)
	txs := []core.Transaction{
		tx(3333, core.Expense, core.Moradia, jan(1)),
		tx(3333, core.Expense, core.Lazer, jan(2)),
		tx(3334, core.Expense, core.Saude, jan(3)),
	}
	var sum float64
	for _, item := range CategoryBreakdown(txs, now) {
		sum += item.Percentage
	}
	if math.Abs(sum-100.0) > 1e-9 {
		t.Fatalf("percentages sum to %f", sum)
	}
}

func TestBreakdownTiesKeepEncounterOrder(t *testing.T) {
	now := jan(31)
	txs := []core.Transaction{
		tx(5000, core.Expense, core.Transporte, jan(1)),
		tx(5000, core.Expense, core.Educacao, jan(2)),
		tx(9000, core.Expense, core.Moradia, jan(3)),
	}
	breakdown := CategoryBreakdown(txs, now)
	if breakdown[0].Category != core.Moradia {
		t.Fatalf("largest group must sort first: %+v", breakdown)
	}
	if breakdown[1].Category != core.Transporte || breakdown[2].Category != core.Educacao {
		t.Fatalf("tied groups must keep encounter order: %+v", breakdown)
	}
}

func TestBreakdownIgnoresIncomeAndOtherMonths(t *testing.T) {
	now := jan(31)
	txs := []core.Transaction{
		tx(100000, core.Income, core.Salario, jan(1)),
		tx(5000, core.Expense, core.Lazer, time.Date(2023, time.December, 30, 0, 0, 0, 0, time.UTC)),
		tx(2000, core.Expense, core.Lazer, jan(4)),
	}
	breakdown := CategoryBreakdown(txs, now)
	if len(breakdown) != 1 || breakdown[0].Amount.Cents != 2000 || breakdown[0].Percentage != 100.0 {
		t.Fatalf("breakdown = %+v", breakdown)
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		current, target int64
		want            float64
	}{
		{0, 100000, 0},
		{100000, 100000, 100},
		{50000, 100000, 50},
		{250000, 100000, 250}, // no clamping
	}
	for _, tc := range cases {
		g := core.FinancialGoal{
			CurrentAmount: core.Money{Cents: tc.current},
			TargetAmount:  core.Money{Cents: tc.target},
		}
		if got := GoalProgress(g); got != tc.want {
			t.Fatalf("GoalProgress(%d/%d) = %f, want %f", tc.current, tc.target, got, tc.want)
		}
	}
	if GoalProgress(core.FinancialGoal{}) != 0 {
		t.Fatalf("zero target must report 0")
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(2024, time.February); got != "fev/24" {
		t.Fatalf("got %q", got)
	}
	if got := MonthLabel(2019, time.December); got != "dez/19" {
		t.Fatalf("got %q", got)
	}
}
