package folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file handles the value-record import format: a CSV with columns
// date,asset,amount. It is meant for bulk backfills exported from a bank
// statement or a spreadsheet.

// ImportValues reads value records from 'r' in CSV format and appends them to
// the ledger. Every referenced asset must already be declared; a header row
// ("date,asset,amount") is detected and skipped. On error the ledger is left
// unchanged.
func ImportValues(l *Ledger, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("cannot parse CSV input: %w", err)
	}

	var entries []Entry
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
			continue // header row
		}
		if len(record) != 3 {
			return 0, fmt.Errorf("line %d: want 3 columns date,asset,amount got %d", i+1, len(record))
		}

		on, err := ParseDate(record[0])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		symbol := strings.TrimSpace(record[1])
		amount, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return 0, fmt.Errorf("line %d: invalid amount %q: %w", i+1, record[2], err)
		}
		entries = append(entries, NewValue(on, symbol, amount))
	}

	if err := l.Append(entries...); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ExportValues writes every value record of the ledger to 'w' in the same CSV
// format, chronological order, with a header row.
func ExportValues(w io.Writer, l *Ledger) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "asset", "amount"}); err != nil {
		return fmt.Errorf("cannot write CSV output: %w", err)
	}
	for _, e := range l.Entries() {
		v, ok := e.(Value)
		if !ok {
			continue
		}
		if err := writer.Write([]string{v.Date.String(), v.Asset, v.Amount.String()}); err != nil {
			return fmt.Errorf("cannot write CSV output: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
