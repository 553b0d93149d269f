package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/folio-app/folio"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func pct(v float64) *folio.Percent {
	p := folio.Percent(v)
	return &p
}

func testLedger(t *testing.T) *folio.Ledger {
	t.Helper()
	l := folio.NewLedger()
	err := l.Append(
		folio.NewInit(folio.MustParseDate("2025-01-01"), "USD"),
		folio.NewDeclareCategory(folio.MustParseDate("2025-01-01"), "Stocks", pct(60), 1),
		folio.NewDeclareCategory(folio.MustParseDate("2025-01-01"), "Bonds", pct(40), 2),
		folio.NewDeclareAsset(folio.MustParseDate("2025-01-01"), "VWCE", "Vanguard FTSE All-World", "IBKR", "USD", "Stocks"),
		folio.NewDeclareAsset(folio.MustParseDate("2025-01-01"), "AGGH", "iShares Core Global Bond", "IBKR", "USD", "Bonds"),
		folio.NewValue(folio.MustParseDate("2025-02-01"), "VWCE", dec(7000)),
		folio.NewValue(folio.MustParseDate("2025-02-01"), "AGGH", dec(3000)),
		folio.NewValue(folio.MustParseDate("2025-03-01"), "VWCE", dec(7500)),
	)
	if err != nil {
		t.Fatalf("Append() = %v, want nil", err)
	}
	return l
}

func TestRenderValuation(t *testing.T) {
	l := testLedger(t)
	v := l.Valuation(folio.MustParseDate("2025-03-01"), "USD", folio.RateTable{})

	got := RenderValuation(NewValuationView(v))
	for _, want := range []string{
		"# Portfolio Valuation on 2025-03-01",
		"VWCE",
		"AGGH", // carried forward from February
		"$10,500.00",
		"Stocks",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderValuation() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "stale") {
		t.Errorf("RenderValuation() mentions stale rates on a fresh table:\n%s", got)
	}
}

func TestRenderValuationStaleRates(t *testing.T) {
	l := testLedger(t)
	v := l.Valuation(folio.MustParseDate("2025-03-01"), "USD", folio.RateTable{Fallback: true})

	got := RenderValuation(NewValuationView(v))
	if !strings.Contains(got, "stale") {
		t.Errorf("RenderValuation() missing the stale-rates warning in:\n%s", got)
	}
}

func TestRenderSummary(t *testing.T) {
	l := testLedger(t)
	s := l.NewSummary(folio.MustParseDate("2025-03-01"), "USD", folio.RateTable{})

	got := RenderSummary(NewSummaryView(s))
	for _, want := range []string{
		"# Portfolio Summary on 2025-03-01",
		"Inception",
		"| Period | Change | Return |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSummary() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderPerformance(t *testing.T) {
	l := testLedger(t)
	r := l.NewPerformanceReport("USD", folio.RateTable{})

	got := RenderPerformance(NewPerformanceView(r))
	for _, want := range []string{
		"# Performance History (USD)",
		"2025-02-01",
		"2025-03-01",
		"Total return:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderPerformance() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderPerformanceEmpty(t *testing.T) {
	l := folio.NewLedger()
	r := l.NewPerformanceReport("USD", folio.RateTable{})

	got := RenderPerformance(NewPerformanceView(r))
	if !strings.Contains(got, "No snapshot recorded yet.") {
		t.Errorf("RenderPerformance() missing the empty notice in:\n%s", got)
	}
}

func TestRenderRebalance(t *testing.T) {
	l := testLedger(t)
	r := l.NewRebalanceReport(folio.MustParseDate("2025-02-01"), "USD", folio.RateTable{})

	got := RenderRebalance(NewRebalanceView(r))
	for _, want := range []string{
		"# Rebalancing on 2025-02-01",
		"## Suggestions",
		"sell",
		"buy",
		"## Transfers",
		"Move $1,000.00 from Stocks to Bonds.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderRebalance() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderUndefinedReturnShowsNA(t *testing.T) {
	if got := fmtReturn(0, false); got != "n/a" {
		t.Errorf("fmtReturn(undefined) = %q, want n/a", got)
	}
	if got := fmtReturn(0.1, true); got != "+10.00%" {
		t.Errorf("fmtReturn(0.1) = %q, want +10.00%%", got)
	}
}
