package mc

import "math"

// GBM is geometric Brownian motion under the risk-neutral measure: drift R, volatility Sigma.
type GBM struct {
	R, Sigma float64
}

// Terminal maps a standard normal variate z to the price at T:
// s0 * exp((R - Sigma^2/2) T + Sigma sqrt(T) z).
func (m GBM) Terminal(s0, T, z float64) float64 {
	return s0 * math.Exp(m.drift()*T+m.Sigma*math.Sqrt(T)*z)
}

// Path simulates a price path for a given vector of timesteps, returning len(dt)+1 prices starting at s0.
// z must hold one standard normal variate per step.
func (m GBM) Path(s0 float64, dt, z []float64) []float64 {
	n := len(dt)
	a := m.drift()
	p := make([]float64, n+1)
	p[0] = s0
	for i := 0; i < n; i++ {
		p[i+1] = p[i] * math.Exp(a*dt[i]+m.Sigma*math.Sqrt(dt[i])*z[i])
	}
	return p
}

func (m GBM) drift() float64 {
	return m.R - 0.5*m.Sigma*m.Sigma
}

// Get returns log(Sigma). The rate is an input, never calibrated.
func (m GBM) Get() []float64 {
	return []float64{math.Log(m.Sigma)}
}

func (m GBM) Set(p []float64) Model {
	m.Sigma = math.Exp(p[0])
	return m
}
