package stats

import (
	"math"
	"sort"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func prices(records []*domain.FuelRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.SaleValue
	}
	return out
}

func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := sortedCopy(xs)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// sampleStd is the Bessel-corrected standard deviation (divide by N-1).
func sampleStd(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// quantileExc computes the p-quantile with the exclusive convention: rank
// p*(n+1), linearly interpolated, clamped to the extremes.
func quantileExc(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	h := p * float64(n+1)
	if h <= 1 {
		return sorted[0]
	}
	if h >= float64(n) {
		return sorted[n-1]
	}
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	return sorted[lo-1] + frac*(sorted[lo]-sorted[lo-1])
}

// modeFirst returns the most frequent value. Ties resolve to the value seen
// first in input order; ok is false for empty input.
func modeFirst(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	counts := make(map[float64]int, len(xs))
	first := make(map[float64]int, len(xs))
	for i, x := range xs {
		if _, seen := first[x]; !seen {
			first[x] = i
		}
		counts[x]++
	}
	best := xs[0]
	for x, c := range counts {
		if c > counts[best] || (c == counts[best] && first[x] < first[best]) {
			best = x
		}
	}
	return best, true
}

// pearson is the Pearson correlation coefficient, 0 for degenerate input.
func pearson(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}
	ma, mb := mean(a), mean(b)
	var num, sa, sb float64
	for i := range a {
		da, db := a[i]-ma, b[i]-mb
		num += da * db
		sa += da * da
		sb += db * db
	}
	den := math.Sqrt(sa * sb)
	if den == 0 {
		return 0
	}
	return num / den
}

// fenceOutliers applies the 1.5×IQR rule. Callers only invoke it when the
// IQR is strictly positive.
func fenceOutliers(xs []float64, q1, q3 float64) []float64 {
	iqr := q3 - q1
	lower := q1 - outlierFenceFactor*iqr
	upper := q3 + outlierFenceFactor*iqr
	out := make([]float64, 0)
	for _, x := range xs {
		if x < lower || x > upper {
			out = append(out, x)
		}
	}
	return out
}
