package folio

// Performance holds the starting value and the calculated return for a
// specific period.
type Performance struct {
	Start, End Money
	Return     float64
	ReturnOK   bool
}

// Change returns the absolute value change over the period.
func (p Performance) Change() Money { return p.End.Sub(p.Start) }

// Summary provides an at-a-glance overview of the portfolio's state and
// time-weighted performance on a given date.
type Summary struct {
	On         Date
	Currency   string
	StaleRates bool
	Total      Money

	Daily     Performance
	WTD       Performance // Week-to-Date
	MTD       Performance // Month-to-Date
	QTD       Performance // Quarter-to-Date
	YTD       Performance // Year-to-Date
	Inception Performance
}

// NewSummary calculates the portfolio summary on a given date. Period
// returns are derived from the TWR history: the return between two
// boundaries is the ratio of their cumulative growth factors.
func (l *Ledger) NewSummary(on Date, displayCurrency string, rates RateTable) *Summary {
	if displayCurrency == "" {
		displayCurrency = l.ReportingCurrency()
	}
	s := &Summary{On: on, Currency: displayCurrency, StaleRates: rates.Fallback}

	history := l.NewPerformanceReport(displayCurrency, rates)
	end := l.Valuation(on, displayCurrency, rates)
	s.Total = end.Total

	// cumulative growth factor at the last snapshot at or before the date
	factorAt := func(boundary Date) float64 {
		factor := 1.0
		for _, p := range history.Points {
			if p.On.After(boundary) {
				break
			}
			factor = 1 + p.Cumulative
		}
		return factor
	}

	endFactor := factorAt(on)
	period := func(start Date) Performance {
		p := Performance{
			Start: l.Valuation(start, displayCurrency, rates).Total,
			End:   end.Total,
		}
		if len(history.Points) > 0 {
			p.Return = endFactor/factorAt(start) - 1
			p.ReturnOK = true
		}
		return p
	}

	s.Daily = period(on.Add(-1))
	s.WTD = period(on.StartOf(Weekly).Add(-1))
	s.MTD = period(on.StartOf(Monthly).Add(-1))
	s.QTD = period(on.StartOf(Quarterly).Add(-1))
	s.YTD = period(on.StartOf(Yearly).Add(-1))
	s.Inception = Performance{
		End:      end.Total,
		Return:   endFactor - 1,
		ReturnOK: len(history.Points) > 0,
	}
	if len(history.Points) > 0 {
		s.Inception.Start = history.Points[0].Value
	} else {
		s.Inception.Start = M(0, displayCurrency)
	}
	return s
}
