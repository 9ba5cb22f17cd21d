// Package worker turns ledger-change events into on-disk snapshot
// exports. The worker never trusts message payloads beyond "something
// changed": it reloads the blobs and rewrites the snapshots whole, so
// a missed event is healed by the next one or by the periodic tick.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"acontafacil/internal/amqp"
	"acontafacil/internal/core"
	"acontafacil/internal/export"
	"acontafacil/internal/storage"
)

type ExportWorker struct {
	mu    sync.Mutex
	blobs storage.Store
	dir   string
}

func NewExportWorker(blobs storage.Store, dir string) *ExportWorker {
	return &ExportWorker{blobs: blobs, dir: dir}
}

// HandleChange is the AMQP consumer callback. Errors propagate so the
// delivery is requeued.
func (w *ExportWorker) HandleChange(ctx context.Context) func(*amqp.LedgerChangeMessage) error {
	return func(msg *amqp.LedgerChangeMessage) error {
		slog.InfoContext(ctx, "Processing ledger change",
			"entity", msg.Entity,
			"action", msg.Action,
			"id", msg.ID)
		return w.Snapshot(ctx)
	}
}

// Snapshot rewrites both export files from the current blobs: the
// transaction history as CSV and the goal list as JSON.
func (w *ExportWorker) Snapshot(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	txs := storage.LoadJSON(ctx, w.blobs, storage.TransactionsKey, []core.Transaction{})
	csvData, err := export.TransactionsCSV(txs)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := writeAtomic(filepath.Join(w.dir, "transactions.csv"), []byte(csvData)); err != nil {
		return fmt.Errorf("write transactions snapshot: %w", err)
	}

	goalsRaw, ok, err := w.blobs.Get(ctx, storage.GoalsKey)
	if err != nil {
		return fmt.Errorf("read goals blob: %w", err)
	}
	if !ok {
		goalsRaw = "[]"
	}
	if err := writeAtomic(filepath.Join(w.dir, "goals.json"), []byte(goalsRaw)); err != nil {
		return fmt.Errorf("write goals snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot written",
		"dir", w.dir,
		"transactions", len(txs))
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
