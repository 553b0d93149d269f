package renderer

import (
	"fmt"

	"github.com/folio-app/folio"
)

// The view types hold pre-formatted strings: templates only lay them out.

// ValuationView is the presentation model of a valuation report.
type ValuationView struct {
	Date       string
	Currency   string
	Total      string
	StaleRates bool
	Assets     []AssetRow
	Categories []CategoryRow
}

// AssetRow is one asset line of a valuation.
type AssetRow struct {
	Symbol   string
	Name     string
	Platform string
	Native   string
	Value    string
}

// CategoryRow is one category line of a valuation.
type CategoryRow struct {
	Name   string
	Value  string
	Weight string
}

// NewValuationView builds the presentation model for a valuation.
func NewValuationView(v *folio.Valuation) *ValuationView {
	view := &ValuationView{
		Date:       v.On.String(),
		Currency:   v.Currency,
		Total:      v.Total.String(),
		StaleRates: v.StaleRates,
	}
	for _, a := range v.Assets {
		view.Assets = append(view.Assets, AssetRow{
			Symbol:   a.Asset.Symbol,
			Name:     a.Asset.Name,
			Platform: a.Asset.Platform,
			Native:   a.Native.String(),
			Value:    a.Value.String(),
		})
	}
	for _, c := range v.Categories {
		view.Categories = append(view.Categories, CategoryRow{
			Name:   c.Name,
			Value:  c.Value.String(),
			Weight: c.Weight.String(),
		})
	}
	return view
}

// SummaryView is the presentation model of a portfolio summary.
type SummaryView struct {
	Date       string
	Total      string
	StaleRates bool
	Periods    []PeriodRow
}

// PeriodRow is one performance period line of a summary.
type PeriodRow struct {
	Label  string
	Change string
	Return string
}

// NewSummaryView builds the presentation model for a summary.
func NewSummaryView(s *folio.Summary) *SummaryView {
	_, week := s.On.ISOWeek()
	quarter := (s.On.Month()-1)/3 + 1

	row := func(label string, p folio.Performance) PeriodRow {
		return PeriodRow{
			Label:  label,
			Change: p.Change().SignedString(),
			Return: fmtReturn(p.Return, p.ReturnOK),
		}
	}
	return &SummaryView{
		Date:       s.On.String(),
		Total:      s.Total.String(),
		StaleRates: s.StaleRates,
		Periods: []PeriodRow{
			row(fmt.Sprintf("Day %d", s.On.Day()), s.Daily),
			row(fmt.Sprintf("Week %d", week), s.WTD),
			row(s.On.Month().String(), s.MTD),
			row(fmt.Sprintf("Q%d", quarter), s.QTD),
			row(fmt.Sprintf("%d", s.On.Year()), s.YTD),
			row("Inception", s.Inception),
		},
	}
}

// PerformanceView is the presentation model of a performance history.
type PerformanceView struct {
	Currency    string
	StaleRates  bool
	Points      []PerformanceRow
	TotalReturn string
	Annualized  string
}

// PerformanceRow is one snapshot line of a performance history.
type PerformanceRow struct {
	Date       string
	Value      string
	NetFlow    string
	Return     string
	Cumulative string
}

// NewPerformanceView builds the presentation model for a performance history.
func NewPerformanceView(r *folio.PerformanceReport) *PerformanceView {
	view := &PerformanceView{
		Currency:    r.Currency,
		StaleRates:  r.StaleRates,
		TotalReturn: fmtReturn(r.TotalReturn, true),
		Annualized:  fmtReturn(r.Annualized, r.AnnualizedOK),
	}
	for _, p := range r.Points {
		view.Points = append(view.Points, PerformanceRow{
			Date:       p.On.String(),
			Value:      p.Value.String(),
			NetFlow:    p.NetFlow.SignedString(),
			Return:     fmtReturn(p.Return, p.ReturnOK),
			Cumulative: fmtReturn(p.Cumulative, true),
		})
	}
	return view
}

// RebalanceView is the presentation model of a rebalancing report.
type RebalanceView struct {
	Date          string
	Total         string
	StaleRates    bool
	Suggestions   []SuggestionRow
	NoTarget      []CategoryRow
	Uncategorized *CategoryRow
	Transfers     []string
	TargetWarning string
}

// SuggestionRow is one targeted category line of a rebalancing report.
type SuggestionRow struct {
	Category   string
	Value      string
	Weight     string
	Target     string
	Difference string
	Action     string
}

// NewRebalanceView builds the presentation model for a rebalancing report.
func NewRebalanceView(r *folio.RebalanceReport) *RebalanceView {
	view := &RebalanceView{
		Date:       r.On.String(),
		Total:      r.Total.String(),
		StaleRates: r.StaleRates,
		Transfers:  r.Transfers,
	}
	if r.HasTargets && !r.TargetSumOK {
		view.TargetWarning = fmt.Sprintf("targets sum to %s, not 100%%", r.TargetSum)
	}
	for _, s := range r.Suggestions {
		view.Suggestions = append(view.Suggestions, SuggestionRow{
			Category:   s.Category,
			Value:      s.Value.String(),
			Weight:     s.Weight.String(),
			Target:     s.Target.String(),
			Difference: s.Difference.SignedString(),
			Action:     s.Action.String(),
		})
	}
	for _, c := range r.NoTarget {
		view.NoTarget = append(view.NoTarget, CategoryRow{Name: c.Name, Value: c.Value.String(), Weight: c.Weight.String()})
	}
	if r.Uncategorized != nil {
		view.Uncategorized = &CategoryRow{
			Name:   r.Uncategorized.Name,
			Value:  r.Uncategorized.Value.String(),
			Weight: r.Uncategorized.Weight.String(),
		}
	}
	return view
}

// fmtReturn formats a rate of return, or "n/a" when it is undefined.
func fmtReturn(r float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", r*100)
}
