package folio

import (
	"testing"
)

func TestSaveAndFindLedger(t *testing.T) {
	dir := t.TempDir()

	l := newTestLedger(t,
		NewDeclareAsset(MustParseDate("2025-01-01"), "VWCE", "", "", "EUR", ""),
		NewValue(MustParseDate("2025-02-01"), "VWCE", dec(850)),
	)
	l.name = "john/ira"

	if err := SaveLedger(dir, l); err != nil {
		t.Fatalf("SaveLedger() = %v, want nil", err)
	}

	loaded, err := FindLedger(dir, "john/ira")
	if err != nil {
		t.Fatalf("FindLedger() = %v, want nil", err)
	}
	if loaded.Name() != "john/ira" {
		t.Errorf("Name() = %q, want %q", loaded.Name(), "john/ira")
	}
	if len(loaded.Entries()) != len(l.Entries()) {
		t.Errorf("len(Entries()) = %d, want %d", len(loaded.Entries()), len(l.Entries()))
	}
}

func TestFindLedgerEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	l, err := FindLedger(dir, "")
	if err != nil {
		t.Fatalf("FindLedger() = %v, want nil", err)
	}
	if l.Name() != DefaultLedgerName {
		t.Errorf("Name() = %q, want %q", l.Name(), DefaultLedgerName)
	}

	if _, err := FindLedger(dir, "missing"); err == nil {
		t.Error("FindLedger(missing) = nil, want error")
	}
}

func TestFindLedgersLoadsAll(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"main", "john/ira"} {
		l := newTestLedger(t)
		l.name = name
		if err := SaveLedger(dir, l); err != nil {
			t.Fatalf("SaveLedger(%s) = %v, want nil", name, err)
		}
	}

	ledgers, err := FindLedgers(dir, "")
	if err != nil {
		t.Fatalf("FindLedgers() = %v, want nil", err)
	}
	if len(ledgers) != 2 {
		t.Errorf("len(FindLedgers()) = %d, want 2", len(ledgers))
	}
}
