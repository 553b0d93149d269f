package folio

import "testing"

// portfolioFixture declares two stocks and a bond fund with values on two
// snapshot dates, where only VWCE is re-valued on the second date.
func portfolioFixture(t *testing.T) *Ledger {
	t.Helper()
	return newTestLedger(t,
		NewDeclareCategory(MustParseDate("2025-01-01"), "Stocks", pct(60), 1),
		NewDeclareCategory(MustParseDate("2025-01-01"), "Bonds", pct(40), 2),
		NewDeclareAsset(MustParseDate("2025-01-01"), "VWCE", "Vanguard FTSE All-World", "IBKR", "USD", "Stocks"),
		NewDeclareAsset(MustParseDate("2025-01-01"), "AGGH", "iShares Core Global Bond", "IBKR", "USD", "Bonds"),
		NewValue(MustParseDate("2025-02-01"), "VWCE", dec(6000)),
		NewValue(MustParseDate("2025-02-01"), "AGGH", dec(4000)),
		NewValue(MustParseDate("2025-03-01"), "VWCE", dec(6500)),
	)
}

func TestValuationCarriesForwardStaleAssets(t *testing.T) {
	l := portfolioFixture(t)

	v := l.Valuation(MustParseDate("2025-03-01"), "USD", RateTable{})
	// AGGH was not re-valued on 2025-03-01: its February value carries forward
	if !v.Total.Equal(USD(10500)) {
		t.Errorf("Total = %v, want %v", v.Total, USD(10500))
	}
	if len(v.Assets) != 2 {
		t.Fatalf("len(Assets) = %d, want 2", len(v.Assets))
	}
}

func TestValuationExcludesAssetsWithoutHistory(t *testing.T) {
	l := portfolioFixture(t)

	// AGGH's first record is 2025-02-01: on an earlier date it is absent, not zero
	v := l.Valuation(MustParseDate("2025-01-15"), "USD", RateTable{})
	if len(v.Assets) != 0 {
		t.Errorf("len(Assets) = %d, want 0 before any record", len(v.Assets))
	}
	if !v.Total.IsZero() {
		t.Errorf("Total = %v, want zero", v.Total)
	}
}

func TestValuationIsDeterministic(t *testing.T) {
	l := portfolioFixture(t)
	on := MustParseDate("2025-03-01")

	a := l.Valuation(on, "USD", RateTable{})
	b := l.Valuation(on, "USD", RateTable{})
	if !a.Total.Equal(b.Total) || len(a.Assets) != len(b.Assets) {
		t.Fatalf("Valuation() differs between calls: %v vs %v", a.Total, b.Total)
	}
	for i := range a.Assets {
		if a.Assets[i].Asset.Symbol != b.Assets[i].Asset.Symbol {
			t.Errorf("Assets[%d] = %q vs %q, want stable order", i, a.Assets[i].Asset.Symbol, b.Assets[i].Asset.Symbol)
		}
	}
}

func TestValuationConvertsToDisplayCurrency(t *testing.T) {
	l := newTestLedger(t,
		NewDeclareAsset(MustParseDate("2025-01-01"), "VWCE", "", "", "EUR", "Stocks"),
		NewValue(MustParseDate("2025-02-01"), "VWCE", dec(85)),
	)

	v := l.Valuation(MustParseDate("2025-02-01"), "USD", usdRates())
	if !v.Total.Equal(USD(100)) {
		t.Errorf("Total = %v, want %v", v.Total, USD(100))
	}
	if !v.Assets[0].Native.Equal(EUR(85)) {
		t.Errorf("Native = %v, want %v", v.Assets[0].Native, EUR(85))
	}
}

func TestValuationCategoryWeights(t *testing.T) {
	l := portfolioFixture(t)

	v := l.Valuation(MustParseDate("2025-02-01"), "USD", RateTable{})
	stocks, ok := v.Category("Stocks")
	if !ok || !stocks.Weight.Equal(60) {
		t.Errorf("Category(Stocks).Weight = %v, want 60%%", stocks.Weight)
	}
	bonds, ok := v.Category("Bonds")
	if !ok || !bonds.Weight.Equal(40) {
		t.Errorf("Category(Bonds).Weight = %v, want 40%%", bonds.Weight)
	}
}

func TestValuationUncategorizedLast(t *testing.T) {
	l := newTestLedger(t,
		NewDeclareCategory(MustParseDate("2025-01-01"), "Stocks", pct(100), 1),
		NewDeclareAsset(MustParseDate("2025-01-01"), "VWCE", "", "", "USD", "Stocks"),
		NewDeclareAsset(MustParseDate("2025-01-01"), "GOLD", "", "", "USD", ""),
		NewValue(MustParseDate("2025-02-01"), "VWCE", dec(900)),
		NewValue(MustParseDate("2025-02-01"), "GOLD", dec(100)),
	)

	v := l.Valuation(MustParseDate("2025-02-01"), "USD", RateTable{})
	if len(v.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(v.Categories))
	}
	last := v.Categories[len(v.Categories)-1]
	if last.Name != Uncategorized || !last.Value.Equal(USD(100)) {
		t.Errorf("last category = %v %v, want %s %v", last.Name, last.Value, Uncategorized, USD(100))
	}
}

func TestValuationZeroTotalWeights(t *testing.T) {
	l := newTestLedger(t,
		NewDeclareAsset(MustParseDate("2025-01-01"), "VWCE", "", "", "USD", "Stocks"),
		NewValue(MustParseDate("2025-02-01"), "VWCE", dec(0)),
	)

	v := l.Valuation(MustParseDate("2025-02-01"), "USD", RateTable{})
	for _, c := range v.Categories {
		if !c.Weight.Equal(0) {
			t.Errorf("Category(%s).Weight = %v, want 0%% on a zero total", c.Name, c.Weight)
		}
	}
}
