package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"acontafacil/internal/amqp"
	"acontafacil/internal/core"
	"acontafacil/internal/storage"
)

func TestSnapshotWritesBothFiles(t *testing.T) {
	ctx := context.Background()
	blobs, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	txs := []core.Transaction{{
		ID:          core.NewID(),
		Date:        time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Description: "internet",
		Amount:      core.Money{Cents: 9990},
		Type:        core.Expense,
		Category:    core.Moradia,
	}}
	storage.SaveJSON(ctx, blobs, storage.TransactionsKey, txs)
	storage.SaveJSON(ctx, blobs, storage.GoalsKey, []core.FinancialGoal{{ID: "g1", Name: "Reserva", TargetAmount: core.Money{Cents: 100}}})

	dir := t.TempDir()
	w := NewExportWorker(blobs, dir)
	if err := w.Snapshot(ctx); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	csvData, err := os.ReadFile(filepath.Join(dir, "transactions.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.Contains(string(csvData), "internet") || !strings.Contains(string(csvData), "99.90") {
		t.Fatalf("csv snapshot = %q", csvData)
	}

	goalsData, err := os.ReadFile(filepath.Join(dir, "goals.json"))
	if err != nil {
		t.Fatalf("read goals: %v", err)
	}
	if !strings.Contains(string(goalsData), "Reserva") {
		t.Fatalf("goals snapshot = %q", goalsData)
	}
}

func TestSnapshotWithEmptyStore(t *testing.T) {
	ctx := context.Background()
	blobs, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	dir := t.TempDir()
	w := NewExportWorker(blobs, dir)
	if err := w.Snapshot(ctx); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	goalsData, _ := os.ReadFile(filepath.Join(dir, "goals.json"))
	if strings.TrimSpace(string(goalsData)) != "[]" {
		t.Fatalf("expected empty goals snapshot, got %q", goalsData)
	}
}

func TestHandleChangeSnapshots(t *testing.T) {
	ctx := context.Background()
	blobs, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	dir := t.TempDir()
	w := NewExportWorker(blobs, dir)

	handler := w.HandleChange(ctx)
	msg := amqp.NewLedgerChangeMessage("transaction", "created", "abc")
	if err := handler(msg); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "transactions.csv")); err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
}
