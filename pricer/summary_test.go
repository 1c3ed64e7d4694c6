package pricer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSummarize(t *testing.T) {
	x := make([]float64, 100)
	for i := range x {
		x[len(x)-1-i] = float64(i + 1)
	}

	s, err := Summarize(x, 10)
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 100.0, s.Max)
	require.InDelta(t, 50.5, s.Mean, 1e-12)
	require.InDelta(t, 50.5, s.Median, 1e-12)
	require.Less(t, s.P5, s.Median)
	require.Greater(t, s.P95, s.Median)

	require.Len(t, s.Histogram.Edges, 11)
	require.Len(t, s.Histogram.Counts, 10)
	require.Equal(t, 100.0, floats.Sum(s.Histogram.Counts))
	require.Equal(t, 1.0, s.Histogram.Edges[0])
	require.Greater(t, s.Histogram.Edges[10], 100.0)

	// input is left untouched
	require.Equal(t, 100.0, x[0])
}

func TestSummarizeSimulation(t *testing.T) {
	p := defaultParameters()
	p.Seed = seed(99)

	res, err := Simulate(p)
	require.NoError(t, err)

	s, err := Summarize(res.TerminalPrices, DefaultBins)
	require.NoError(t, err)
	require.Len(t, s.Histogram.Counts, DefaultBins)
	require.Equal(t, float64(p.Paths), floats.Sum(s.Histogram.Counts))
	// E[S_T] = S e^{rT}
	require.InDelta(t, p.Spot*math.Exp(p.Rate*p.Maturity), s.Mean, 1.5)
}

func TestSummarizeFewPaths(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 19, 20, 21} {
		p := defaultParameters()
		p.Paths = n
		p.Seed = seed(1)

		res, err := Simulate(p)
		require.NoError(t, err)

		s, err := Summarize(res.TerminalPrices, DefaultBins)
		require.NoError(t, err, "paths=%d", n)
		require.Equal(t, float64(n), floats.Sum(s.Histogram.Counts))
		require.LessOrEqual(t, s.Min, s.P5)
		require.LessOrEqual(t, s.P5, s.Median)
		require.LessOrEqual(t, s.Median, s.P95)
		require.LessOrEqual(t, s.P95, s.Max)
	}

	s, err := Summarize([]float64{3, 1}, 4)
	require.NoError(t, err)
	require.Equal(t, 1.0, s.P5)
	require.Equal(t, 2.0, s.Median)
	require.Equal(t, 3.0, s.P95)
}

func TestSummarizeSingleValue(t *testing.T) {
	p := defaultParameters()
	p.Volatility = 0
	p.Paths = 250

	res, err := Simulate(p)
	require.NoError(t, err)

	s, err := Summarize(res.TerminalPrices, 5)
	require.NoError(t, err)
	require.InDelta(t, 0.0, s.StdDev, 1e-9)
	require.Equal(t, s.Min, s.Max)
	require.Equal(t, 250.0, floats.Sum(s.Histogram.Counts))
	require.Less(t, s.Histogram.Edges[0], s.Min)
	require.Greater(t, s.Histogram.Edges[5], s.Max)

	one, err := Summarize([]float64{42}, 3)
	require.NoError(t, err)
	require.Equal(t, 42.0, one.Median)
	require.Equal(t, 0.0, one.StdDev)
}

func TestSummarizeErrors(t *testing.T) {
	_, err := Summarize(nil, 10)
	require.Error(t, err)

	_, err = Summarize([]float64{1, 2}, 0)
	require.Error(t, err)

	_, err = Summarize([]float64{1, math.Inf(1)}, 10)
	require.ErrorIs(t, err, ErrNonFinite)

	_, err = Summarize([]float64{math.NaN(), 1}, 10)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestConverge(t *testing.T) {
	p := defaultParameters()
	p.Seed = seed(17)
	p.SamplePaths = 3

	var calls []int
	points, used, err := Converge(p, []int{1000, 100, 1000, 10000}, func(done int) {
		calls = append(calls, done)
	})
	require.NoError(t, err)
	require.Equal(t, uint64(17), used)
	require.Equal(t, []int{1, 2, 3}, calls)
	require.Len(t, points, 3)
	require.Equal(t, []int{100, 1000, 10000}, []int{points[0].Paths, points[1].Paths, points[2].Paths})

	p.Paths = 10000
	p.SamplePaths = 0
	want, err := Simulate(p)
	require.NoError(t, err)
	require.Equal(t, want.Price, points[2].Price)
	require.Equal(t, want.StdErr, points[2].StdErr)
	require.Greater(t, points[0].StdErr, points[2].StdErr)

	_, _, err = Converge(p, []int{0}, nil)
	require.Error(t, err)

	p.Spot = 0
	_, _, err = Converge(p, []int{100}, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
