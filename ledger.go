package folio

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Uncategorized is the label grouping assets that reference no category.
const Uncategorized = "Uncategorized"

// Asset is an investment position held on a platform. Identity (ID, Symbol)
// is immutable once declared; currency, category and platform describe the
// asset as currently known.
type Asset struct {
	ID       uuid.UUID
	Symbol   string
	Name     string
	Platform string
	Currency string
	Category string // empty means uncategorized
}

// Category is a named allocation bucket. A nil Target excludes the category
// from rebalancing suggestions without hiding it from reports.
type Category struct {
	ID     uuid.UUID
	Name   string
	Target *Percent
	Order  int
}

// valueRecord is one point of the per-asset carry-forward index.
type valueRecord struct {
	on     Date
	amount decimal.Decimal
}

// Ledger holds the full portfolio history: declarations, per-asset value
// records, and external cash flows, always in chronological order.
type Ledger struct {
	name     string
	currency string // reporting currency, set by the init entry
	entries  []Entry

	assets     map[string]Asset
	categories map[string]Category
	values     map[string][]valueRecord // per asset, sorted by date
	flows      []Flow                   // sorted by date
	dates      []Date                   // sorted unique snapshot dates
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		assets:     make(map[string]Asset),
		categories: make(map[string]Category),
		values:     make(map[string][]valueRecord),
	}
}

// Name returns the ledger name, derived from its file path by the loader.
func (l *Ledger) Name() string { return l.name }

// ReportingCurrency returns the currency declared by the init entry,
// defaulting to USD when the ledger was never initialized.
func (l *Ledger) ReportingCurrency() string {
	if l.currency == "" {
		return "USD"
	}
	return l.currency
}

// Append validates entries and inserts them in chronological order.
// On error the ledger is left unchanged.
func (l *Ledger) Append(entries ...Entry) error {
	staged := make([]Entry, 0, len(entries))
	for _, e := range entries {
		validated, err := l.validate(e)
		if err != nil {
			l.rebuild() // discard declarations indexed for earlier entries of the batch
			return fmt.Errorf("invalid %s entry on %v: %w", e.What(), e.When(), err)
		}
		staged = append(staged, validated)
		// declarations must be visible to subsequent entries in the same batch
		l.index(validated)
	}
	l.entries = append(l.entries, staged...)
	l.reindex()
	return nil
}

// validate checks a single entry against the current ledger state. A zero
// date defaults to today.
func (l *Ledger) validate(e Entry) (Entry, error) {
	switch v := e.(type) {
	case Init:
		if v.Date.IsZero() {
			v.Date = Today()
		}
		if v.Currency == "" {
			return nil, errors.New("reporting currency is missing")
		}
		if l.currency != "" && l.currency != v.Currency {
			return nil, fmt.Errorf("reporting currency already set to %q", l.currency)
		}
		return v, nil
	case DeclareAsset:
		if v.Date.IsZero() {
			v.Date = Today()
		}
		if v.Symbol == "" {
			return nil, errors.New("asset symbol is missing")
		}
		if v.Currency == "" {
			return nil, errors.New("asset currency is missing")
		}
		if _, exists := l.assets[v.Symbol]; exists {
			return nil, fmt.Errorf("asset %q already declared", v.Symbol)
		}
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		return v, nil
	case DeclareCategory:
		if v.Date.IsZero() {
			v.Date = Today()
		}
		if v.Name == "" {
			return nil, errors.New("category name is missing")
		}
		if _, exists := l.categories[v.Name]; exists {
			return nil, fmt.Errorf("category %q already declared", v.Name)
		}
		if v.Target != nil && (*v.Target < 0 || *v.Target > 100) {
			return nil, fmt.Errorf("target allocation %v out of range [0,100]", *v.Target)
		}
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		return v, nil
	case Value:
		if v.Date.IsZero() {
			v.Date = Today()
		}
		if v.Asset == "" {
			return nil, errors.New("asset symbol is missing")
		}
		if _, exists := l.assets[v.Asset]; !exists {
			return nil, fmt.Errorf("asset %q not declared in ledger", v.Asset)
		}
		return v, nil
	case Flow:
		if v.Date.IsZero() {
			v.Date = Today()
		}
		if v.Currency == "" {
			v.Currency = l.ReportingCurrency()
		}
		if v.Amount.IsZero() {
			return nil, errors.New("cash flow amount is zero")
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported entry type %T", e)
	}
}

// index records the declaration side effects of a validated entry.
func (l *Ledger) index(e Entry) {
	switch v := e.(type) {
	case Init:
		l.currency = v.Currency
	case DeclareAsset:
		l.assets[v.Symbol] = Asset{
			ID:       v.ID,
			Symbol:   v.Symbol,
			Name:     v.Name,
			Platform: v.Platform,
			Currency: v.Currency,
			Category: v.Category,
		}
	case DeclareCategory:
		l.categories[v.Name] = Category{ID: v.ID, Name: v.Name, Target: v.Target, Order: v.Order}
	}
}

// rebuild resets every derived structure and replays the entry list.
func (l *Ledger) rebuild() {
	l.currency = ""
	l.assets = make(map[string]Asset)
	l.categories = make(map[string]Category)
	for _, e := range l.entries {
		l.index(e)
	}
	l.reindex()
}

// reindex rebuilds the chronological ordering and the carry-forward lookup
// structures from the entry list.
func (l *Ledger) reindex() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].When().Before(l.entries[j].When())
	})

	l.values = make(map[string][]valueRecord, len(l.assets))
	l.flows = l.flows[:0]
	seen := make(map[Date]bool)
	l.dates = l.dates[:0]

	for _, e := range l.entries {
		switch v := e.(type) {
		case Value:
			records := l.values[v.Asset]
			// at most one record per asset per date: the last entry wins
			if n := len(records); n > 0 && records[n-1].on == v.Date {
				records[n-1].amount = v.Amount
			} else {
				records = append(records, valueRecord{on: v.Date, amount: v.Amount})
			}
			l.values[v.Asset] = records
			// flows never open a snapshot on their own: a deposit shows up in
			// the portfolio only once a value record reflects it
			if !seen[v.Date] {
				seen[v.Date] = true
				l.dates = append(l.dates, v.Date)
			}
		case Flow:
			l.flows = append(l.flows, v)
		}
	}
}

// Entries returns a copy of all entries in chronological order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Assets returns all declared assets sorted by symbol.
func (l *Ledger) Assets() []Asset {
	out := make([]Asset, 0, len(l.assets))
	for _, a := range l.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Asset returns the asset declared with this symbol.
func (l *Ledger) Asset(symbol string) (Asset, bool) {
	a, ok := l.assets[symbol]
	return a, ok
}

// Categories returns all declared categories sorted by display order, then name.
func (l *Ledger) Categories() []Category {
	out := make([]Category, 0, len(l.categories))
	for _, c := range l.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Category returns the category declared with this name.
func (l *Ledger) Category(name string) (Category, bool) {
	c, ok := l.categories[name]
	return c, ok
}

// TargetSum returns the sum of all declared target allocations, and whether
// at least one category has a target. The sum is not required to be 100;
// callers surface a mismatch as a warning, never an error.
func (l *Ledger) TargetSum() (Percent, bool) {
	var sum Percent
	var has bool
	for _, c := range l.categories {
		if c.Target != nil {
			sum += *c.Target
			has = true
		}
	}
	return sum, has
}

// SnapshotDates returns the sorted unique dates carrying value records.
func (l *Ledger) SnapshotDates() []Date {
	out := make([]Date, len(l.dates))
	copy(out, l.dates)
	return out
}

// LatestSnapshot returns the most recent snapshot date, if any.
func (l *Ledger) LatestSnapshot() (Date, bool) {
	if len(l.dates) == 0 {
		return Date{}, false
	}
	return l.dates[len(l.dates)-1], true
}

// ValueAsOf returns the asset's most recent recorded value at or before the
// given date. The second return is false when the asset has no record at or
// before that date: such an asset is absent from valuations, not zero.
func (l *Ledger) ValueAsOf(symbol string, on Date) (decimal.Decimal, bool) {
	records := l.values[symbol]
	// first record strictly after 'on'
	idx := sort.Search(len(records), func(i int) bool { return records[i].on.After(on) })
	if idx == 0 {
		return decimal.Decimal{}, false
	}
	return records[idx-1].amount, true
}

// Flows returns a copy of all cash flows in chronological order.
func (l *Ledger) Flows() []Flow {
	out := make([]Flow, len(l.flows))
	copy(out, l.flows)
	return out
}

// FlowsBetween returns the cash flows dated strictly after 'after' and at or
// before 'upTo', the convention used to attribute flows to a return period.
func (l *Ledger) FlowsBetween(after, upTo Date) []Flow {
	var out []Flow
	for _, f := range l.flows {
		if f.Date.After(after) && !f.Date.After(upTo) {
			out = append(out, f)
		}
	}
	return out
}
