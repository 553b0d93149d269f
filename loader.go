package folio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLedgerName is used when a folio directory holds no ledger file yet.
const DefaultLedgerName = "portfolio"

// FindLedger returns the unique ledger matching the name under path.
// An empty query with no ledger on disk returns a fresh default ledger, so a
// new folio directory is usable without a setup step. Any other miss, and any
// ambiguous match, is an error.
func FindLedger(path, query string) (*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(ledgerPaths) {
	case 0:
		if query == "" {
			l := NewLedger()
			l.name = DefaultLedgerName
			return l, nil
		}
		return nil, fmt.Errorf("could not find ledger %q", query)
	case 1:
		return loadLedgerFile(path, ledgerPaths[0])
	default:
		return nil, fmt.Errorf("multiple ledgers found for %q", query)
	}
}

// FindLedgers discovers and loads ledger files under a folio path. A ledger
// name is its relative path without the .jsonl extension; an empty query
// loads them all.
func FindLedgers(path, query string) ([]*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil {
		return nil, err
	}

	var loaded []*Ledger
	for _, fullPath := range ledgerPaths {
		ledger, err := loadLedgerFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, ledger)
	}
	return loaded, nil
}

// loadLedgerFile opens and decodes a ledger, naming it after its relative
// path to the folio root.
func loadLedgerFile(folioPath, fullPath string) (*Ledger, error) {
	relPath, err := filepath.Rel(folioPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", fullPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", fullPath, err)
	}
	ledger.name = strings.TrimSuffix(relPath, ".jsonl")
	return ledger, nil
}

// SaveLedger writes the ledger to its file under path, derived from the
// ledger name (a ledger named "john/ira" saves to "<path>/john/ira.jsonl").
func SaveLedger(path string, ledger *Ledger) error {
	name := ledger.Name()
	if name == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}

	filePath := filepath.Join(path, name+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodeLedger(file, ledger)
}

// findLedgerPaths scans a directory tree for ledger files matching the query.
func findLedgerPaths(path, query string) ([]string, error) {
	var ledgers []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			relPath, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(relPath, ".jsonl")
			if query == "" || name == query {
				ledgers = append(ledgers, p)
			}
		}
		return nil
	})

	return ledgers, err
}
