package fxrates

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/folio-app/folio"
)

const sampleResponse = `{
	"result": "success",
	"base_code": "USD",
	"rates": {
		"USD": 1,
		"EUR": 0.85,
		"GBP": 0.75,
		"XXX": 0
	}
}`

func decodedSample(t *testing.T) any {
	t.Helper()
	var jobj any
	if err := json.Unmarshal([]byte(sampleResponse), &jobj); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	return jobj
}

func TestParseTable(t *testing.T) {
	table, err := parseTable(decodedSample(t), "USD")
	if err != nil {
		t.Fatalf("parseTable() = %v, want nil", err)
	}
	if table.Base != "USD" {
		t.Errorf("Base = %q, want USD", table.Base)
	}
	if got := table.Rates["EUR"]; !got.Equal(decimal.NewFromFloat(0.85)) {
		t.Errorf("Rates[EUR] = %v, want 0.85", got)
	}
	// zero rates are dropped so conversion fails open instead of dividing by zero
	if _, ok := table.Rates["XXX"]; ok {
		t.Error("Rates[XXX] present, want zero rates dropped")
	}
	if table.Fallback {
		t.Error("Fallback = true, want false on a fresh table")
	}
}

func TestParseTableMissingRates(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"result":"error"}`), &jobj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := parseTable(jobj, "USD"); err == nil {
		t.Error("parseTable(no rates) = nil, want error")
	}
}

func TestFallbackRoundTrip(t *testing.T) {
	s := &Service{store: t.TempDir()}

	table := folio.RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"EUR": decimal.NewFromFloat(0.85)},
	}
	s.remember(table)

	cause := errors.New("network down")
	got, err := s.fallback("USD", cause)
	if err != nil {
		t.Fatalf("fallback() = %v, want the remembered table", err)
	}
	if !got.Fallback {
		t.Error("Fallback = false, want true on a served fallback")
	}
	if !got.Rates["EUR"].Equal(decimal.NewFromFloat(0.85)) {
		t.Errorf("Rates[EUR] = %v, want 0.85", got.Rates["EUR"])
	}
}

func TestFallbackMissingReturnsCause(t *testing.T) {
	s := &Service{store: t.TempDir()}
	cause := errors.New("network down")
	if _, err := s.fallback("USD", cause); !errors.Is(err, cause) {
		t.Errorf("fallback() error = %v, want the fetch cause", err)
	}
}

func TestConvertWithParsedTable(t *testing.T) {
	table, err := parseTable(decodedSample(t), "USD")
	if err != nil {
		t.Fatalf("parseTable() = %v, want nil", err)
	}
	got := table.Convert(folio.M(100, "USD"), "EUR")
	if !got.Equal(folio.M(85, "EUR")) {
		t.Errorf("Convert() = %v, want EUR 85", got)
	}
}
