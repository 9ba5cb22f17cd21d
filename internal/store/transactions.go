// Package store owns the persisted collections of the ledger. Each
// store loads its blob once at startup, guards it with a mutex, and
// rewrites the whole list after every successful mutation. There is no
// delta persistence and no cross-process coordination: two processes
// sharing a backend overwrite each other, last write wins.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"acontafacil/internal/core"
	"acontafacil/internal/storage"
)

// EventPublisher receives a notification after every successful
// mutation. Publishing is best-effort; failures never fail the
// operation that triggered them.
type EventPublisher interface {
	PublishLedgerChange(ctx context.Context, entity, action, id string) error
}

// Transactions is the ordered transaction collection, newest first.
type Transactions struct {
	mu     sync.Mutex
	blobs  storage.Store
	events EventPublisher
	items  []core.Transaction
}

// NewTransactions loads the persisted list (empty when absent or
// unparsable). events may be nil.
func NewTransactions(ctx context.Context, blobs storage.Store, events EventPublisher) *Transactions {
	items := storage.LoadJSON(ctx, blobs, storage.TransactionsKey, []core.Transaction{})
	slog.InfoContext(ctx, "Transaction store loaded", "count", len(items))
	return &Transactions{blobs: blobs, events: events, items: items}
}

// All returns a snapshot copy of the list, newest first.
func (s *Transactions) All() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

// Add validates t, assigns an ID and defaults when missing, and
// prepends it. On validation failure nothing changes.
func (s *Transactions) Add(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.ID == "" {
		t.ID = core.NewID()
	}
	t.Description = strings.TrimSpace(t.Description)
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	s.mu.Lock()
	s.items = append([]core.Transaction{t}, s.items...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, "transaction", "created", t.ID)
	slog.InfoContext(ctx, "Transaction added",
		"id", t.ID,
		"type", string(t.Type),
		"category", string(t.Category),
		"amount_cents", t.Amount.Cents)
	return t, nil
}

// Update replaces every field except the ID of the matching record.
// Returns false without error when no record matches.
func (s *Transactions) Update(ctx context.Context, id string, fields core.Transaction) (bool, error) {
	fields.ID = id
	fields.Description = strings.TrimSpace(fields.Description)
	if err := fields.Validate(); err != nil {
		return false, fmt.Errorf("validate transaction: %w", err)
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
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
		s.publish(ctx, "transaction", "updated", id)
		slog.InfoContext(ctx, "Transaction updated", "id", id)
	}
	return found, nil
}

// Remove deletes the matching record. Removing an absent ID is a
// no-op, not an error.
func (s *Transactions) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	found := false
	kept := s.items[:0]
	for _, t := range s.items {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.items = kept
	if found {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if found {
		s.publish(ctx, "transaction", "deleted", id)
		slog.InfoContext(ctx, "Transaction removed", "id", id)
	}
	return found
}

// persistLocked rewrites the whole list. Callers hold the mutex.
func (s *Transactions) persistLocked(ctx context.Context) {
	storage.SaveJSON(ctx, s.blobs, storage.TransactionsKey, s.items)
}

func (s *Transactions) publish(ctx context.Context, entity, action, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLedgerChange(ctx, entity, action, id); err != nil {
		slog.WarnContext(ctx, "Ledger change publish failed",
			"entity", entity, "action", action, "id", id, "error", err)
	}
}
