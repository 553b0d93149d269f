package folio

import (
	"testing"

	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// dec is a helper for test to create a decimal from const
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// pct is a helper for test to take the address of a target allocation
func pct(v float64) *Percent {
	p := Percent(v)
	return &p
}

// usdRates is a USD-based rate table used across tests: 1 USD = 0.85 EUR,
// 1 USD = 0.75 GBP.
func usdRates() RateTable {
	return RateTable{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": dec(0.85),
			"GBP": dec(0.75),
		},
	}
}

// newTestLedger builds a USD ledger with the given entries, failing the test
// on any validation error.
func newTestLedger(t *testing.T, entries ...Entry) *Ledger {
	t.Helper()
	l := NewLedger()
	if err := l.Append(NewInit(MustParseDate("2025-01-01"), "USD")); err != nil {
		t.Fatalf("Append(init) = %v, want nil", err)
	}
	if err := l.Append(entries...); err != nil {
		t.Fatalf("Append() = %v, want nil", err)
	}
	return l
}
