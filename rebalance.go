package folio

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Action is the direction of a rebalancing suggestion.
type Action int

const (
	ActionNone Action = iota // imbalance below the trade threshold
	ActionBuy
	ActionSell
)

func (a Action) String() string {
	switch a {
	case ActionBuy:
		return "buy"
	case ActionSell:
		return "sell"
	default:
		return "hold"
	}
}

// tradeThreshold is one unit of the display currency: imbalances below it
// never prompt a trade.
var tradeThreshold = decimal.NewFromInt(1)

// Suggestion is the rebalancing verdict for one targeted category.
// Difference is in currency units: positive means the category is oversized
// (sell), negative undersized (buy).
type Suggestion struct {
	Category   string
	Value      Money
	Weight     Percent
	Target     Percent
	Difference Money
	Action     Action
}

// RebalanceReport compares current category allocations against their
// targets and derives a minimal set of transfers. Categories without a
// target and uncategorized assets are informational rows only; they never
// receive suggestions.
type RebalanceReport struct {
	On         Date
	Currency   string
	StaleRates bool
	Total      Money

	Suggestions   []Suggestion  // sorted by |Difference| descending
	NoTarget      []CategoryValue
	Uncategorized *CategoryValue
	Transfers     []string // human-readable, greedily matched

	TargetSum   Percent // sum of declared targets; a sum ≠ 100 is a warning, never an error
	HasTargets  bool
	TargetSumOK bool
}

// NewRebalanceReport resolves the valuation at the given date and computes
// rebalancing suggestions against the ledger's declared categories.
func (l *Ledger) NewRebalanceReport(on Date, displayCurrency string, rates RateTable) *RebalanceReport {
	return Rebalance(l.Valuation(on, displayCurrency, rates), l.Categories())
}

// Rebalance computes the rebalancing report for an already-resolved
// valuation. It is a pure function: no state survives between calls.
func Rebalance(v *Valuation, categories []Category) *RebalanceReport {
	r := &RebalanceReport{
		On:         v.On,
		Currency:   v.Currency,
		StaleRates: v.StaleRates,
		Total:      v.Total,
	}

	declared := make(map[string]bool, len(categories))
	for _, c := range categories {
		declared[c.Name] = true
		if c.Target != nil {
			r.TargetSum += *c.Target
			r.HasTargets = true
		}
	}
	r.TargetSumOK = r.TargetSum.Equal(100)

	// informational rows: declared categories without a target, ad-hoc
	// category labels never declared, and the uncategorized bucket
	for _, c := range categories {
		if c.Target != nil {
			continue
		}
		row := CategoryValue{Name: c.Name, Value: M(0, v.Currency)}
		if cv, ok := v.Category(c.Name); ok {
			row = cv
		}
		r.NoTarget = append(r.NoTarget, row)
	}
	for _, cv := range v.Categories {
		if cv.Name == Uncategorized {
			row := cv
			r.Uncategorized = &row
			continue
		}
		if !declared[cv.Name] {
			r.NoTarget = append(r.NoTarget, cv)
		}
	}

	// an empty portfolio or the absence of targets yields no suggestions
	if !v.Total.IsPositive() || !r.HasTargets {
		return r
	}

	for _, c := range categories {
		if c.Target == nil {
			continue
		}
		value := M(0, v.Currency)
		var weight Percent
		if cv, ok := v.Category(c.Name); ok {
			value, weight = cv.Value, cv.Weight
		}
		share := decimal.NewFromFloat(float64(*c.Target) / 100)
		difference := value.Sub(v.Total.Scale(share))

		action := ActionNone
		if difference.Abs().Amount().GreaterThanOrEqual(tradeThreshold) {
			if difference.IsPositive() {
				action = ActionSell
			} else {
				action = ActionBuy
			}
		}
		r.Suggestions = append(r.Suggestions, Suggestion{
			Category:   c.Name,
			Value:      value,
			Weight:     weight,
			Target:     *c.Target,
			Difference: difference,
			Action:     action,
		})
	}

	// largest imbalance first; ties keep the declared category order
	sort.SliceStable(r.Suggestions, func(i, j int) bool {
		return r.Suggestions[i].Difference.Abs().GreaterThan(r.Suggestions[j].Difference.Abs())
	})

	var sells, buys []imbalance
	for _, s := range r.Suggestions {
		switch s.Action {
		case ActionSell:
			sells = append(sells, imbalance{s.Category, s.Difference.Amount()})
		case ActionBuy:
			buys = append(buys, imbalance{s.Category, s.Difference.Amount().Neg()})
		}
	}
	r.Transfers = matchTransfers(sells, buys, v.Currency)
	return r
}

// imbalance is an outstanding surplus or deficit while matching transfers.
type imbalance struct {
	name   string
	amount decimal.Decimal
}

// matchTransfers pairs the largest remaining surplus with the largest
// remaining deficit until one side is exhausted. Each round extinguishes at
// least one category, so at most len(sells)+len(buys)-1 transfers are
// emitted and their total equals the true net imbalance. A Cartesian
// pairing of every sell with every buy would overstate both the count and
// the money moved.
func matchTransfers(sells, buys []imbalance, currency string) []string {
	sortImbalances(sells)
	sortImbalances(buys)

	var texts []string
	for len(sells) > 0 && len(buys) > 0 {
		amount := decimal.Min(sells[0].amount, buys[0].amount)
		texts = append(texts, fmt.Sprintf("Move %s from %s to %s.",
			M(amount, currency), sells[0].name, buys[0].name))
		sells[0].amount = sells[0].amount.Sub(amount)
		buys[0].amount = buys[0].amount.Sub(amount)
		sells = settle(sells)
		buys = settle(buys)
	}
	return texts
}

func sortImbalances(q []imbalance) {
	sort.SliceStable(q, func(i, j int) bool { return q[i].amount.GreaterThan(q[j].amount) })
}

// settle drops an extinguished head, or sinks a decremented head back to its
// place so the queue stays sorted largest-first.
func settle(q []imbalance) []imbalance {
	if q[0].amount.IsZero() {
		return q[1:]
	}
	for i := 0; i+1 < len(q) && q[i].amount.LessThan(q[i+1].amount); i++ {
		q[i], q[i+1] = q[i+1], q[i]
	}
	return q
}
