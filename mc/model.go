package mc

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Model interface to be satisfied by asset price models.
type Model interface {
	// Simulate the price at horizon T from a single standard normal variate
	Terminal(s0, T, z float64) float64
	// Simulate a price path for the given timesteps and standard normal variates
	Path(s0 float64, dt, z []float64) []float64
	// Get transformed model parameters. Return parameters mapped to the domain (-Inf, Inf)
	Get() []float64
	// Create a model for the given transformed parameters
	Set([]float64) Model
}

// Fit calibrates m by minimising loss over its transformed parameters with Nelder-Mead.
func Fit(m Model, loss func(Model) float64) (Model, error) {
	par := m.Get()
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			return loss(m.Set(par))
		},
	}
	res, err := optimize.Minimize(problem, par, nil, &optimize.NelderMead{})
	if err != nil {
		return m, fmt.Errorf("minimize: %w", err)
	}
	return m.Set(res.X), nil
}
