package store

import (
	"context"
	"testing"

	"acontafacil/internal/core"
)

func goal(name string, target, current int64) core.FinancialGoal {
	return core.FinancialGoal{
		Name:          name,
		TargetAmount:  core.Money{Cents: target},
		CurrentAmount: core.Money{Cents: current},
	}
}

func TestGoalAddAndReload(t *testing.T) {
	ctx := context.Background()
	blobs := testBlobs(t)

	s := NewGoals(ctx, blobs, nil)
	added, err := s.Add(ctx, goal("Viagem para Europa", 1500000, 900000))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not filled")
	}

	reloaded := NewGoals(ctx, blobs, nil)
	all := reloaded.All()
	if len(all) != 1 || all[0].ID != added.ID || all[0].CurrentAmount.Cents != 900000 {
		t.Fatalf("reload mismatch: %+v", all)
	}
}

func TestGoalValidationRules(t *testing.T) {
	ctx := context.Background()
	s := NewGoals(ctx, testBlobs(t), nil)

	cases := []core.FinancialGoal{
		goal("", 1000, 0),
		goal("sem alvo", 0, 0),
		goal("alvo negativo", -100, 0),
		goal("progresso negativo", 1000, -1),
	}
	for i, bad := range cases {
		if _, err := s.Add(ctx, bad); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
	if len(s.All()) != 0 {
		t.Fatalf("store must stay unchanged after rejected adds")
	}

	// Zero current amount is valid; over-achievement too.
	if _, err := s.Add(ctx, goal("do zero", 1000, 0)); err != nil {
		t.Fatalf("zero current amount: %v", err)
	}
	if _, err := s.Add(ctx, goal("superada", 1000, 2500)); err != nil {
		t.Fatalf("current above target: %v", err)
	}
}

func TestGoalUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewGoals(ctx, testBlobs(t), nil)

	added, _ := s.Add(ctx, goal("Notebook", 700000, 150000))

	found, err := s.Update(ctx, added.ID, goal("Notebook novo", 700000, 300000))
	if err != nil || !found {
		t.Fatalf("Update = %v, %v", found, err)
	}
	got := s.All()[0]
	if got.Name != "Notebook novo" || got.CurrentAmount.Cents != 300000 {
		t.Fatalf("fields not replaced: %+v", got)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Fatalf("CreatedAt must survive updates")
	}

	if found, err := s.Update(ctx, "absent", goal("x", 100, 0)); err != nil || found {
		t.Fatalf("expected silent no-op for unknown id")
	}
}

func TestGoalRemove(t *testing.T) {
	ctx := context.Background()
	s := NewGoals(ctx, testBlobs(t), nil)

	added, _ := s.Add(ctx, goal("Reserva", 1000000, 850000))
	if !s.Remove(ctx, added.ID) {
		t.Fatalf("expected removal")
	}
	if s.Remove(ctx, added.ID) {
		t.Fatalf("second removal must be a no-op")
	}
	if len(s.All()) != 0 {
		t.Fatalf("goal still present")
	}
}
