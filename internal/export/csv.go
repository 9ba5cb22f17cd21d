// Package export renders the transaction history as CSV. The same
// encoding feeds the download endpoint, the worker snapshots, and the
// historical-data payload of the forecast prompt.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"acontafacil/internal/core"
)

var header = []string{"date", "description", "type", "category", "amount"}

// TransactionsCSV encodes the list with a header row, preserving the
// input order. Amounts are plain decimals, dates RFC 3339 date-only.
func TransactionsCSV(txs []core.Transaction) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txs {
		row := []string{
			t.Date.Format(time.DateOnly),
			t.Description,
			string(t.Type),
			string(t.Category),
			fmt.Sprintf("%d.%02d", t.Amount.Cents/100, t.Amount.Cents%100),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}
