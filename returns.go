package folio

import "math"

// This file holds the pure return-calculation functions. They operate on
// already-resolved, currency-normalized float64 values.
//
// Metrics that are mathematically meaningless for their inputs return
// (0, false) rather than an error or a sentinel: 0 is a legitimate return
// value (a no-change period), so absence is always explicit.

// GrowthRate returns the simple growth rate (end-begin)/begin.
// It is undefined when begin is not strictly positive.
func GrowthRate(begin, end float64) (float64, bool) {
	if begin <= 0 {
		return 0, false
	}
	return (end - begin) / begin, true
}

// PeriodFlow is an external cash flow inside a return period: a signed
// amount and the number of days elapsed since the period start.
type PeriodFlow struct {
	Amount float64
	Day    int
}

// ModifiedDietz computes the Modified Dietz return of a period: the gain net
// of external flows over the time-weighted average invested capital. A flow
// on day 0 carries full weight 1, a flow on the last day carries weight 0;
// both are valid boundaries.
//
// The result is undefined when begin is not strictly positive, or when the
// weighted denominator is not strictly positive (for example a withdrawal
// larger than the weighted base makes a percentage return meaningless).
func ModifiedDietz(begin, end float64, flows []PeriodFlow, totalDays int) (float64, bool) {
	if begin <= 0 {
		return 0, false
	}
	if totalDays <= 0 && len(flows) > 0 {
		return 0, false
	}

	var netFlow, weightedFlow float64
	for _, f := range flows {
		w := float64(totalDays-f.Day) / float64(totalDays)
		netFlow += f.Amount
		weightedFlow += w * f.Amount
	}

	denominator := begin + weightedFlow
	if denominator <= 0 {
		return 0, false
	}
	return (end - begin - netFlow) / denominator, true
}

// CumulativeTWR chains sub-period returns multiplicatively: Π(1+r)-1.
// An empty series has zero cumulative change, not an absent one.
func CumulativeTWR(returns []float64) float64 {
	factor := 1.0
	for _, r := range returns {
		factor *= 1 + r
	}
	return factor - 1
}

// CAGR returns the compound annual growth rate over a (possibly fractional)
// number of years. It is undefined when begin or years is not strictly
// positive.
func CAGR(begin, end, years float64) (float64, bool) {
	if begin <= 0 || years <= 0 {
		return 0, false
	}
	return math.Pow(end/begin, 1/years) - 1, true
}

// CategoryAllocation returns the share of the total a category value
// represents. A non-positive total trivially allocates 0% everywhere; this
// is a defined answer, not an absent one.
func CategoryAllocation(value, total Money) Percent {
	if !total.IsPositive() {
		return 0
	}
	return Percent(100 * value.AsFloat() / total.AsFloat())
}

// Rebase re-expresses a cumulative return series relative to its first
// point, as the ratio of growth factors: (1+rᵢ)/(1+r₀)-1. The first point
// becomes 0 by construction. It applies to any contiguous sub-window of a
// longer series and reproduces the sub-period return exactly, including
// when the base point is a prior loss.
func Rebase(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	base := 1 + series[0]
	out := make([]float64, len(series))
	for i, r := range series {
		out[i] = (1+r)/base - 1
	}
	out[0] = 0
	return out
}
