package folio

import "testing"

func TestSummaryPeriodReturns(t *testing.T) {
	l := historyFixture(t)
	on := MustParseDate("2025-03-31")
	history := l.NewPerformanceReport("USD", RateTable{})

	s := l.NewSummary(on, "USD", RateTable{})
	if !s.Total.Equal(USD(13260)) {
		t.Errorf("Total = %v, want %v", s.Total, USD(13260))
	}

	// March holds one period (2025-02-28 to 2025-03-31): MTD is its return
	march := history.Points[2].Return
	if !s.MTD.ReturnOK || !almost(s.MTD.Return, march) {
		t.Errorf("MTD.Return = %v, %v, want %v, true", s.MTD.Return, s.MTD.ReturnOK, march)
	}
	if !s.MTD.Start.Equal(USD(11000)) {
		t.Errorf("MTD.Start = %v, want %v", s.MTD.Start, USD(11000))
	}

	// the whole history sits inside 2025: YTD equals the inception return
	if !s.YTD.ReturnOK || !almost(s.YTD.Return, history.TotalReturn) {
		t.Errorf("YTD.Return = %v, %v, want %v, true", s.YTD.Return, s.YTD.ReturnOK, history.TotalReturn)
	}
	if !s.Inception.ReturnOK || !almost(s.Inception.Return, history.TotalReturn) {
		t.Errorf("Inception.Return = %v, %v, want %v, true", s.Inception.Return, s.Inception.ReturnOK, history.TotalReturn)
	}
	if !s.Inception.Start.Equal(USD(10000)) {
		t.Errorf("Inception.Start = %v, want %v", s.Inception.Start, USD(10000))
	}
}

func TestSummaryChange(t *testing.T) {
	p := Performance{Start: USD(10000), End: USD(13260)}
	if got := p.Change(); !got.Equal(USD(3260)) {
		t.Errorf("Change() = %v, want %v", got, USD(3260))
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	l := newTestLedger(t)
	s := l.NewSummary(MustParseDate("2025-03-31"), "", RateTable{})
	if s.Currency != "USD" {
		t.Errorf("Currency = %q, want the reporting currency USD", s.Currency)
	}
	if !s.Total.IsZero() {
		t.Errorf("Total = %v, want zero", s.Total)
	}
	if s.Inception.ReturnOK {
		t.Error("Inception.ReturnOK = true, want false without history")
	}
}
