package core

import (
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -500}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	good := Transaction{
		ID:          NewID(),
		Date:        date,
		Description: "aluguel",
		Amount:      Money{Cents: 120000},
		Type:        Expense,
		Category:    Moradia,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Date: time.Time{}, Description: "a", Amount: Money{Cents: 1}, Type: Expense, Category: Moradia},
		{Date: date, Description: "", Amount: Money{Cents: 1}, Type: Expense, Category: Moradia},
		{Date: date, Description: "a", Amount: Money{Cents: 0}, Type: Expense, Category: Moradia},
		{Date: date, Description: "a", Amount: Money{Cents: 1}, Type: "transfer", Category: Moradia},
		{Date: date, Description: "a", Amount: Money{Cents: 1}, Type: Expense, Category: "Jogatina"},
		// income category on an expense and vice versa
		{Date: date, Description: "a", Amount: Money{Cents: 1}, Type: Expense, Category: Salario},
		{Date: date, Description: "a", Amount: Money{Cents: 1}, Type: Income, Category: Moradia},
	}
	for i, tr := range bads {
		if err := tr.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	future := created.AddDate(1, 0, 0)
	good := FinancialGoal{
		ID:            NewID(),
		Name:          "Reserva de Emergência",
		TargetAmount:  Money{Cents: 1000000},
		CurrentAmount: Money{Cents: 0},
		TargetDate:    &future,
		CreatedAt:     created,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	past := created.AddDate(0, -1, 0)
	bads := []FinancialGoal{
		{Name: "", TargetAmount: Money{Cents: 1}, CreatedAt: created},
		{Name: "g", TargetAmount: Money{Cents: 0}, CreatedAt: created},
		{Name: "g", TargetAmount: Money{Cents: -5}, CreatedAt: created},
		{Name: "g", TargetAmount: Money{Cents: 1}, CurrentAmount: Money{Cents: -1}, CreatedAt: created},
		{Name: "g", TargetAmount: Money{Cents: 1}, TargetDate: &past, CreatedAt: created},
	}
	for i, g := range bads {
		if err := g.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}

	// over-achievement is valid: current may exceed target
	over := good
	over.CurrentAmount = Money{Cents: 2000000}
	if err := over.Validate(); err != nil {
		t.Fatalf("expected ok for current > target, got %v", err)
	}
}

func TestCategoriesFor(t *testing.T) {
	exp := CategoriesFor(Expense)
	if len(exp) != 8 {
		t.Fatalf("expected 8 expense categories, got %d", len(exp))
	}
	inc := CategoriesFor(Income)
	if len(inc) != 3 {
		t.Fatalf("expected 3 income categories, got %d", len(inc))
	}
	if CategoriesFor("other") != nil {
		t.Fatalf("expected nil for unknown type")
	}
	if !Expense.Allows(Lazer) || Expense.Allows(Salario) {
		t.Fatalf("expense category set wrong")
	}
	if !Income.Allows(Investimentos) || Income.Allows(Lazer) {
		t.Fatalf("income category set wrong")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
