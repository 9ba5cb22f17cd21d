package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"acontafacil/internal/core"
	"acontafacil/internal/storage"
)

// Goals is the financial goal collection. Same lifecycle as
// Transactions: load once, mutate under a mutex, persist in full.
type Goals struct {
	mu     sync.Mutex
	blobs  storage.Store
	events EventPublisher
	items  []core.FinancialGoal
}

func NewGoals(ctx context.Context, blobs storage.Store, events EventPublisher) *Goals {
	items := storage.LoadJSON(ctx, blobs, storage.GoalsKey, []core.FinancialGoal{})
	slog.InfoContext(ctx, "Goal store loaded", "count", len(items))
	return &Goals{blobs: blobs, events: events, items: items}
}

func (s *Goals) All() []core.FinancialGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.FinancialGoal, len(s.items))
	copy(out, s.items)
	return out
}

// Add validates g, fills ID and CreatedAt when missing, and prepends
// it. On validation failure nothing changes.
func (s *Goals) Add(ctx context.Context, g core.FinancialGoal) (core.FinancialGoal, error) {
	if g.ID == "" {
		g.ID = core.NewID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	g.Name = strings.TrimSpace(g.Name)
	if err := g.Validate(); err != nil {
		return core.FinancialGoal{}, fmt.Errorf("validate goal: %w", err)
	}

	s.mu.Lock()
	s.items = append([]core.FinancialGoal{g}, s.items...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, "goal", "created", g.ID)
	slog.InfoContext(ctx, "Goal added",
		"id", g.ID,
		"name", g.Name,
		"target_cents", g.TargetAmount.Cents)
	return g, nil
}

// Update replaces the fields of the matching goal, keeping its ID and
// CreatedAt. Returns false without error when no goal matches.
func (s *Goals) Update(ctx context.Context, id string, fields core.FinancialGoal) (bool, error) {
	fields.ID = id
	fields.Name = strings.TrimSpace(fields.Name)

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			fields.CreatedAt = s.items[i].CreatedAt
			if err := fields.Validate(); err != nil {
				s.mu.Unlock()
				return false, fmt.Errorf("validate goal: %w", err)
			}
			s.items[i] = fields
			found = true
			break
		}
	}
	if found {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if found {
		s.publish(ctx, "goal", "updated", id)
		slog.InfoContext(ctx, "Goal updated", "id", id)
	}
	return found, nil
}

func (s *Goals) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	found := false
	kept := s.items[:0]
	for _, g := range s.items {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	s.items = kept
	if found {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if found {
		s.publish(ctx, "goal", "deleted", id)
		slog.InfoContext(ctx, "Goal removed", "id", id)
	}
	return found
}

func (s *Goals) persistLocked(ctx context.Context) {
	storage.SaveJSON(ctx, s.blobs, storage.GoalsKey, s.items)
}

func (s *Goals) publish(ctx context.Context, entity, action, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLedgerChange(ctx, entity, action, id); err != nil {
		slog.WarnContext(ctx, "Ledger change publish failed",
			"entity", entity, "action", action, "id", id, "error", err)
	}
}
