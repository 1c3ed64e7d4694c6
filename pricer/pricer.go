package pricer

import (
	"math"
	"time"

	"github.com/banachtech/mcoption/mc"
	"github.com/banachtech/mcoption/payoff"
	"github.com/banachtech/mcoption/util"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const DefaultSteps = 100

// Sample paths draw from their own stream so they never share variates with the terminal prices.
const pathStream = 0x9e3779b97f4a7c15

// Parameters of a single pricing run.
type Parameters struct {
	Spot       float64
	Strike     float64
	Maturity   float64 // years
	Rate       float64
	Volatility float64
	Paths      int
	Type       payoff.OptionType

	// Number of full paths to simulate for display, at most Paths.
	SamplePaths int
	// Time steps per sample path. Zero means DefaultSteps.
	Steps int

	// Seed makes the run reproducible. Nil picks a time-derived seed, reported in Result.Seed.
	Seed *uint64
}

// Result of a single pricing run. TerminalPrices[i] is the price produced by the i-th draw.
type Result struct {
	Price          float64
	StdErr         float64
	TerminalPrices []float64
	SamplePaths    [][]float64
	TimeGrid       []float64
	Seed           uint64
}

// Finite reports whether the price, the terminal prices and the sample paths are all finite numbers.
func (r *Result) Finite() bool {
	if !isFinite(r.Price) || !isFinite(r.StdErr) {
		return false
	}
	for _, v := range r.TerminalPrices {
		if !isFinite(v) {
			return false
		}
	}
	for _, path := range r.SamplePaths {
		for _, v := range path {
			if !isFinite(v) {
				return false
			}
		}
	}
	return true
}

// Validate checks p and returns an *InvalidParameterError naming the first offending field.
func (p Parameters) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spot", p.Spot},
		{"strike", p.Strike},
		{"maturity", p.Maturity},
		{"rate", p.Rate},
		{"volatility", p.Volatility},
	} {
		if !isFinite(f.v) {
			return invalid(f.name, f.v, "must be a finite number")
		}
	}
	switch {
	case p.Spot <= 0:
		return invalid("spot", p.Spot, "must be positive")
	case p.Strike <= 0:
		return invalid("strike", p.Strike, "must be positive")
	case p.Maturity <= 0:
		return invalid("maturity", p.Maturity, "must be positive")
	case p.Volatility < 0:
		return invalid("volatility", p.Volatility, "must not be negative")
	case p.Paths < 1:
		return invalid("paths", p.Paths, "must be at least 1")
	case !p.Type.Valid():
		return invalid("option_type", p.Type, "must be call or put")
	case p.SamplePaths < 0 || p.SamplePaths > p.Paths:
		return invalid("sample_paths", p.SamplePaths, "must be between 0 and paths")
	case p.Steps < 0:
		return invalid("steps", p.Steps, "must not be negative")
	}
	return nil
}

// Simulate prices a European option by Monte Carlo under geometric Brownian motion.
// Invalid parameters are rejected before anything is drawn. Overflow is not guarded:
// extreme inputs surface as Inf or NaN in the result, see Result.Finite.
func Simulate(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if p.Seed != nil {
		seed = *p.Seed
	}

	model := mc.GBM{R: p.Rate, Sigma: p.Volatility}
	option, err := payoff.NewVanilla(p.Strike, p.Type)
	if err != nil {
		return nil, err
	}
	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(seed)}

	terminal := make([]float64, p.Paths)
	payouts := make([]float64, p.Paths)
	for i := range terminal {
		terminal[i] = model.Terminal(p.Spot, p.Maturity, d.Rand())
		payouts[i] = option.Payout(terminal[i])
	}

	df := math.Exp(-p.Rate * p.Maturity)
	mean, std := stat.MeanStdDev(payouts, nil)
	if p.Paths == 1 {
		std = 0
	}

	res := &Result{
		Price:          df * mean,
		StdErr:         df * std / math.Sqrt(float64(p.Paths)),
		TerminalPrices: terminal,
		Seed:           seed,
	}

	if p.SamplePaths > 0 {
		steps := p.Steps
		if steps == 0 {
			steps = DefaultSteps
		}
		res.TimeGrid, res.SamplePaths = samplePaths(model, p.Spot, p.Maturity, steps, p.SamplePaths, seed^pathStream)
	}
	return res, nil
}

func samplePaths(model mc.GBM, s0, T float64, steps, n int, seed uint64) ([]float64, [][]float64) {
	// steps >= 1 here, so the grid cannot fail
	grid, _ := util.TimeGrid(T, steps)
	dt := util.Increments(grid)

	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(seed)}
	paths := make([][]float64, n)
	z := make([]float64, steps)
	for j := range paths {
		for i := range z {
			z[i] = d.Rand()
		}
		paths[j] = model.Path(s0, dt, z)
	}
	return grid, paths
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Engine exposes Simulate as a method for callers that depend on an interface.
type Engine struct{}

func (Engine) Simulate(p Parameters) (*Result, error) {
	return Simulate(p)
}
