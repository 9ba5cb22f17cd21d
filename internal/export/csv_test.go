package export

import (
	"strings"
	"testing"
	"time"

	"acontafacil/internal/core"
)

func TestTransactionsCSV(t *testing.T) {
	txs := []core.Transaction{
		{
			Date:        time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
			Description: "aluguel, janeiro",
			Amount:      core.Money{Cents: 120050},
			Type:        core.Expense,
			Category:    core.Moradia,
		},
		{
			Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			Description: "salário",
			Amount:      core.Money{Cents: 500000},
			Type:        core.Income,
			Category:    core.Salario,
		},
	}

	got, err := TransactionsCSV(txs)
	if err != nil {
		t.Fatalf("TransactionsCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "date,description,type,category,amount" {
		t.Fatalf("header = %q", lines[0])
	}
	// Comma in the description must be quoted.
	if lines[1] != `2024-01-15,"aluguel, janeiro",expense,Moradia,1200.50` {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "2024-01-05,salário,income,Salário,5000.00" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestTransactionsCSVEmpty(t *testing.T) {
	got, err := TransactionsCSV(nil)
	if err != nil {
		t.Fatalf("TransactionsCSV: %v", err)
	}
	if strings.TrimSpace(got) != "date,description,type,category,amount" {
		t.Fatalf("empty list should emit only the header, got %q", got)
	}
}
