package aggregation

import (
	"math"

	"github.com/shopspring/decimal"
)

// Aggregator reduces the samples of one field in one window to a statistic.
// ok is false when the statistic is undefined for the given samples.
type Aggregator interface {
	Reduce(samples []decimal.Decimal) (value float64, ok bool)
}

// Operators is the registry of per-window statistics, keyed by stat name.
var Operators = map[string]Aggregator{
	StatMean: meanAgg{},
	StatMin:  minAgg{},
	StatMax:  maxAgg{},
	StatStd:  stdAgg{},
}

// ValidOperator reports whether op is a registered statistic.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

func mean(samples []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(samples[0], samples[1:]...).Div(decimal.NewFromInt(int64(len(samples))))
}

type meanAgg struct{}

func (meanAgg) Reduce(samples []decimal.Decimal) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	return mean(samples).InexactFloat64(), true
}

type minAgg struct{}

func (minAgg) Reduce(samples []decimal.Decimal) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	return decimal.Min(samples[0], samples[1:]...).InexactFloat64(), true
}

type maxAgg struct{}

func (maxAgg) Reduce(samples []decimal.Decimal) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	return decimal.Max(samples[0], samples[1:]...).InexactFloat64(), true
}

// stdAgg is the sample standard deviation (n-1 denominator). A window with
// fewer than two samples has no standard deviation.
type stdAgg struct{}

func (stdAgg) Reduce(samples []decimal.Decimal) (float64, bool) {
	n := len(samples)
	if n < 2 {
		return 0, false
	}
	m := mean(samples)
	ss := decimal.Zero
	for _, s := range samples {
		d := s.Sub(m)
		ss = ss.Add(d.Mul(d))
	}
	variance := ss.Div(decimal.NewFromInt(int64(n - 1)))
	return math.Sqrt(variance.InexactFloat64()), true
}
