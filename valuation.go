package folio

import "sort"

// AssetValue is one row of an effective valuation: the asset's carried-forward
// market value in its own currency, and converted to the display currency.
type AssetValue struct {
	Asset  Asset
	Native Money
	Value  Money
}

// CategoryValue aggregates the included assets of one category.
type CategoryValue struct {
	Name   string
	Value  Money
	Weight Percent // share of the valuation total, 0 when the total is 0
}

// Valuation is the effective state of the portfolio as of a date: every asset
// valued at its most recent record at or before that date. Assets whose only
// records are later are excluded entirely, not shown as zero.
type Valuation struct {
	On         Date
	Currency   string
	StaleRates bool // the rate table used was a cached fallback
	Total      Money
	Assets     []AssetValue
	Categories []CategoryValue
}

// Valuation resolves the effective holdings as of the given date, converted
// into the display currency. An empty displayCurrency defaults to the
// ledger's reporting currency.
//
// The result is a pure function of the record history up to the date:
// resolving the same date twice against the same ledger yields identical
// results. Before any history exists the valuation is empty, with a zero
// total and no rows.
func (l *Ledger) Valuation(on Date, displayCurrency string, rates RateTable) *Valuation {
	if displayCurrency == "" {
		displayCurrency = l.ReportingCurrency()
	}
	v := &Valuation{
		On:         on,
		Currency:   displayCurrency,
		StaleRates: rates.Fallback,
		Total:      M(0, displayCurrency),
	}

	byCategory := make(map[string]Money)
	for _, a := range l.Assets() {
		amount, ok := l.ValueAsOf(a.Symbol, on)
		if !ok {
			continue
		}
		native := M(amount, a.Currency)
		value := rates.Convert(native, displayCurrency)
		v.Assets = append(v.Assets, AssetValue{Asset: a, Native: native, Value: value})
		v.Total = v.Total.Add(value)

		label := a.Category
		if label == "" {
			label = Uncategorized
		}
		if _, seen := byCategory[label]; !seen {
			byCategory[label] = M(0, displayCurrency)
		}
		byCategory[label] = byCategory[label].Add(value)
	}

	v.Categories = l.categoryRows(byCategory, v.Total)
	return v
}

// categoryRows orders category totals: declared categories first in display
// order, then undeclared labels alphabetically, Uncategorized always last.
func (l *Ledger) categoryRows(byCategory map[string]Money, total Money) []CategoryValue {
	rows := make([]CategoryValue, 0, len(byCategory))
	emit := func(label string) {
		value, ok := byCategory[label]
		if !ok {
			return
		}
		delete(byCategory, label)
		rows = append(rows, CategoryValue{
			Name:   label,
			Value:  value,
			Weight: CategoryAllocation(value, total),
		})
	}

	for _, c := range l.Categories() {
		emit(c.Name)
	}
	rest := make([]string, 0, len(byCategory))
	for label := range byCategory {
		if label != Uncategorized {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	for _, label := range rest {
		emit(label)
	}
	emit(Uncategorized)
	return rows
}

// Category returns the valuation row for the named category, if present.
func (v *Valuation) Category(name string) (CategoryValue, bool) {
	for _, c := range v.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryValue{}, false
}
