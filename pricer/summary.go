package pricer

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const DefaultBins = 50

// Histogram holds len(Counts)+1 bin edges. Each bin is [Edges[i], Edges[i+1]).
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []float64 `json:"counts"`
}

// Summary describes a terminal price distribution for display.
type Summary struct {
	Mean      float64   `json:"mean"`
	StdDev    float64   `json:"std_dev"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	P5        float64   `json:"p5"`
	Median    float64   `json:"median"`
	P95       float64   `json:"p95"`
	Histogram Histogram `json:"histogram"`
}

// Summarize computes moments, percentiles and an equal width histogram of x.
// Non-finite values cannot be binned and yield ErrNonFinite.
func Summarize(x []float64, bins int) (*Summary, error) {
	if len(x) == 0 {
		return nil, errors.New("summarize: empty sample")
	}
	if bins < 1 {
		return nil, fmt.Errorf("summarize: bins must be positive, got %d", bins)
	}
	for _, v := range x {
		if !isFinite(v) {
			return nil, ErrNonFinite
		}
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	s := &Summary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		s.StdDev = 0
	}

	// empirical quantiles are defined for any sample size
	s.P5 = stat.Quantile(0.05, stat.Empirical, sorted, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	var err error
	if s.Median, err = stats.Median(sorted); err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}

	lo, hi := s.Min, math.Nextafter(s.Max, math.Inf(1))
	if s.Max-s.Min == 0 {
		// single valued sample, centre it in a small range around the value
		half := math.Max(0.5, math.Abs(s.Min)*1e-6)
		lo, hi = s.Min-half, s.Min+half
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi
	s.Histogram = Histogram{
		Edges:  edges,
		Counts: stat.Histogram(nil, edges, sorted, nil),
	}
	return s, nil
}
