package folio

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger(t *testing.T) {
	l := newTestLedger(t,
		NewDeclareCategory(MustParseDate("2025-01-01"), "Stocks", pct(60), 1),
		NewDeclareAsset(MustParseDate("2025-01-01"), "VWCE", "Vanguard FTSE All-World", "IBKR", "EUR", "Stocks"),
		NewValue(MustParseDate("2025-02-01"), "VWCE", dec(85.5)),
		NewFlow(MustParseDate("2025-02-15"), "monthly deposit", dec(500), "USD"),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() = %v, want nil", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() = %v, want nil", err)
	}

	want := l.Entries()
	got := decoded.Entries()
	if len(got) != len(want) {
		t.Fatalf("len(Entries()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Entries()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if decoded.ReportingCurrency() != "USD" {
		t.Errorf("ReportingCurrency() = %q, want USD", decoded.ReportingCurrency())
	}
}

func TestEncodeLedgerFieldOrder(t *testing.T) {
	l := newTestLedger(t)
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() = %v, want nil", err)
	}
	// the command comes first on every line, so diffs stay readable
	want := `{"command":"init","date":"2025-01-01","currency":"USD"}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeLedger() = %q, want %q", buf.String(), want)
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	input := `{"command":"init","date":"2025-01-01","currency":"EUR"}

{"command":"flow","date":"2025-02-01","amount":100,"currency":"EUR"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() = %v, want nil", err)
	}
	if len(l.Entries()) != 2 {
		t.Errorf("len(Entries()) = %d, want 2", len(l.Entries()))
	}
}

func TestDecodeLedgerUnknownCommand(t *testing.T) {
	input := `{"command":"teleport","date":"2025-01-01"}`
	if _, err := DecodeLedger(strings.NewReader(input)); err == nil {
		t.Error("DecodeLedger(unknown command) = nil, want error")
	}
}

func TestDecodeLedgerRejectsInvalidEntries(t *testing.T) {
	// a value for an asset never declared must not load silently
	input := `{"command":"value","date":"2025-02-01","asset":"GHOST","amount":100}`
	if _, err := DecodeLedger(strings.NewReader(input)); err == nil {
		t.Error("DecodeLedger(undeclared asset) = nil, want error")
	}
}
