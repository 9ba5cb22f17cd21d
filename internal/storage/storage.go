// Package storage persists named JSON blobs. Each key holds one
// serialized value, rewritten in full on every save. Reads tolerate
// missing keys and corrupt payloads by falling back to a default.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Store is a minimal key-value port over raw strings. Backends are a
// flat file per key, a SQLite table, or a Postgres table.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	Close() error
}

// Well-known blob keys. No versioning field; a change in blob shape
// discards old data on next load.
const (
	TransactionsKey = "acontafacil-transactions"
	GoalsKey        = "acontafacil-goals"
)

// LoadJSON reads and decodes the blob under key. A missing key, a read
// error or a parse failure all yield def; corruption is logged and
// treated as absence, never surfaced.
func LoadJSON[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Blob read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.WarnContext(ctx, "Blob parse failed, using default", "key", key, "error", err)
		return def
	}
	return v
}

// SaveJSON serializes v and overwrites the blob under key. Persistence
// is best-effort: failures are logged and swallowed, no retry.
func SaveJSON(ctx context.Context, s Store, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(ctx, "Blob marshal failed, write dropped", "key", key, "error", err)
		return
	}
	if err := s.Put(ctx, key, string(raw)); err != nil {
		slog.WarnContext(ctx, "Blob write failed, write dropped", "key", key, "error", err)
	}
}

// Options selects and configures a backend.
type Options struct {
	Backend     string // "file", "sqlite" or "postgres"
	DataDir     string // file backend
	SQLitePath  string // sqlite backend
	PostgresURL string // postgres backend
}

// Open constructs the configured backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", "file":
		return NewFileStore(opts.DataDir)
	case "sqlite":
		return NewSQLiteStore(opts.SQLitePath)
	case "postgres":
		return NewPostgresStore(opts.PostgresURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
