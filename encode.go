package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger reads a stream of JSONL entries, decodes each line into the
// appropriate entry struct, and returns a validated, sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command EntryType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var decoded Entry
		var err error

		switch identifier.Command {
		case CmdInit:
			var e Init
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case CmdDeclareAsset:
			var e DeclareAsset
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case CmdDeclareCategory:
			var e DeclareCategory
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case CmdValue:
			var e Value
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		case CmdFlow:
			var e Flow
			err = json.Unmarshal(lineBytes, &e)
			decoded = e
		default:
			err = fmt.Errorf("unknown entry command: %q", identifier.Command)
		}

		if err != nil {
			return nil, err
		}
		if err := ledger.Append(decoded); err != nil {
			return nil, fmt.Errorf("invalid line %q: %w", string(lineBytes), err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, one entry
// per line in chronological order. Entries on the same day keep their relative
// order, so encoding is stable and diff-friendly.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	for _, e := range ledger.entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
