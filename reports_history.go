package folio

// PerformancePoint is the portfolio state at one snapshot date, with the
// return of the period that ends there.
type PerformancePoint struct {
	On      Date
	Value   Money
	NetFlow Money // external flows attributed to the period, display currency

	Return     float64 // Modified Dietz return of the period ending here
	ReturnOK   bool    // false when the period return is undefined
	Cumulative float64 // time-weighted return chained since the first point
}

// PerformanceReport is the full time-weighted performance history of the
// portfolio, one point per snapshot date.
//
// Each period runs from one snapshot to the next; its return is the
// Modified Dietz return with the period's external cash flows weighted by
// timing. A period whose return is undefined (for example a zero starting
// value) chains as the identity: it never poisons the rest of the series,
// and the last point's Cumulative always equals CumulativeTWR over the
// defined period returns.
type PerformanceReport struct {
	Currency   string
	StaleRates bool
	Points     []PerformancePoint

	TotalReturn float64 // cumulative TWR at the last point

	Growth   float64 // naive begin-to-end growth, flows included
	GrowthOK bool

	Annualized   float64 // CAGR of the time-weighted growth factor
	AnnualizedOK bool
}

// NewPerformanceReport computes the performance history over every snapshot
// in the ledger, in the display currency (empty defaults to the reporting
// currency).
func (l *Ledger) NewPerformanceReport(displayCurrency string, rates RateTable) *PerformanceReport {
	if displayCurrency == "" {
		displayCurrency = l.ReportingCurrency()
	}
	r := &PerformanceReport{Currency: displayCurrency, StaleRates: rates.Fallback}

	dates := l.SnapshotDates()
	if len(dates) == 0 {
		return r
	}

	values := make([]float64, len(dates))
	for i, on := range dates {
		values[i] = l.Valuation(on, displayCurrency, rates).Total.AsFloat()
	}

	factor := 1.0
	for i, on := range dates {
		point := PerformancePoint{
			On:      on,
			Value:   l.Valuation(on, displayCurrency, rates).Total,
			NetFlow: M(0, displayCurrency),
		}
		if i > 0 {
			prev := dates[i-1]
			totalDays := prev.DaysUntil(on)
			var flows []PeriodFlow
			for _, f := range l.FlowsBetween(prev, on) {
				converted := rates.Convert(f.Money(), displayCurrency)
				point.NetFlow = point.NetFlow.Add(converted)
				flows = append(flows, PeriodFlow{
					Amount: converted.AsFloat(),
					Day:    prev.DaysUntil(f.Date),
				})
			}
			point.Return, point.ReturnOK = ModifiedDietz(values[i-1], values[i], flows, totalDays)
			if point.ReturnOK {
				factor *= 1 + point.Return
			}
		}
		point.Cumulative = factor - 1
		r.Points = append(r.Points, point)
	}

	r.TotalReturn = r.Points[len(r.Points)-1].Cumulative
	r.Growth, r.GrowthOK = GrowthRate(values[0], values[len(values)-1])
	years := dates[0].YearsUntil(dates[len(dates)-1])
	r.Annualized, r.AnnualizedOK = CAGR(1, 1+r.TotalReturn, years)
	return r
}

// Window narrows the report to the snapshots inside the range and rebases
// the cumulative series on the window's first point. The rebased series is
// the ratio of growth factors, so the window reproduces the exact
// sub-period return even when the original base point was a loss.
func (r *PerformanceReport) Window(rng Range) *PerformanceReport {
	out := &PerformanceReport{Currency: r.Currency, StaleRates: r.StaleRates}

	series := make([]float64, 0, len(r.Points))
	for _, p := range r.Points {
		if rng.Contains(p.On) {
			out.Points = append(out.Points, p)
			series = append(series, p.Cumulative)
		}
	}
	if len(out.Points) == 0 {
		return out
	}

	rebased := Rebase(series)
	for i := range out.Points {
		out.Points[i].Cumulative = rebased[i]
	}
	// the first point's period ended before the window: it carries no return
	out.Points[0].Return, out.Points[0].ReturnOK = 0, false
	out.Points[0].NetFlow = M(0, r.Currency)

	out.TotalReturn = rebased[len(rebased)-1]
	first, last := out.Points[0], out.Points[len(out.Points)-1]
	out.Growth, out.GrowthOK = GrowthRate(first.Value.AsFloat(), last.Value.AsFloat())
	out.Annualized, out.AnnualizedOK = CAGR(1, 1+out.TotalReturn, first.On.YearsUntil(last.On))
	return out
}
