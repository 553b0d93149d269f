package folio

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is an immutable snapshot of base-relative exchange rates, as
// handed over by the rate-fetching collaborator. Rates are multipliers:
// amount-in-base × rate = amount-in-target. Fallback marks a table served
// from cache rather than freshly fetched, so reports can warn about
// staleness.
//
// The zero value is a usable empty table: every conversion passes through.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
	Fallback  bool                       `json:"fallback,omitempty"`
}

// rate returns a usable rate for the code, case-insensitively. A missing or
// zero rate is unusable and reported as absent.
func (t RateTable) rate(code string) (decimal.Decimal, bool) {
	if r, ok := t.Rates[code]; ok && !r.IsZero() {
		return r, true
	}
	for k, r := range t.Rates {
		if strings.EqualFold(k, code) && !r.IsZero() {
			return r, true
		}
	}
	return decimal.Decimal{}, false
}

// Convert converts a monetary amount into the target currency.
//
// Conversion never fails: when a needed rate is missing or zero, the numeric
// amount passes through unchanged and is treated as already denominated in
// the target currency. A missing exchange rate must never corrupt or crash a
// valuation; the table's Fallback flag is the caller's staleness signal.
func (t RateTable) Convert(m Money, to string) Money {
	from := m.Currency()
	if strings.EqualFold(from, to) {
		return m
	}
	if m.IsZero() {
		return M(decimal.Decimal{}, to)
	}

	amount := m.Amount()
	switch {
	case strings.EqualFold(from, t.Base):
		if r, ok := t.rate(to); ok {
			return M(amount.Mul(r), to)
		}
	case strings.EqualFold(to, t.Base):
		if r, ok := t.rate(from); ok {
			return M(amount.Div(r), to)
		}
	default:
		rFrom, okFrom := t.rate(from)
		rTo, okTo := t.rate(to)
		if okFrom && okTo {
			return M(amount.Div(rFrom).Mul(rTo), to)
		}
	}
	// fail open: pass the amount through unchanged
	return M(amount, to)
}
