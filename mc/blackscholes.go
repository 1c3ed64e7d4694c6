package mc

import (
	"errors"
	"fmt"
	"math"

	"github.com/banachtech/mcoption/payoff"
	"gonum.org/v1/gonum/stat/distuv"
)

// black-scholes model, no dividend yield.
// With zero volatility or zero time the price collapses to the discounted intrinsic value of the forward.
func BlackScholes(s, k, T, r, sigma float64, option payoff.OptionType) float64 {
	df := math.Exp(-r * T)
	if sigma == 0 || T == 0 {
		v := payoff.Vanilla{Strike: k * df, Type: option}
		return v.Payout(s)
	}
	x := sigma * math.Sqrt(T)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*T) / x
	d2 := d1 - x

	N := distuv.UnitNormal

	if option == payoff.Put {
		return k*df*N.CDF(-d2) - s*N.CDF(-d1)
	}
	return s*N.CDF(d1) - k*df*N.CDF(d2)
}

var ErrNoArbitrageBounds = errors.New("price outside no-arbitrage bounds")

// ImpliedVol finds the GBM volatility whose Black-Scholes price matches a quoted option price.
func ImpliedVol(price, s, k, T, r float64, option payoff.OptionType) (float64, error) {
	if s <= 0 || k <= 0 || T <= 0 {
		return math.NaN(), fmt.Errorf("spot, strike and maturity must be positive: s=%v k=%v T=%v", s, k, T)
	}
	lo := BlackScholes(s, k, T, r, 0, option)
	hi := s
	if option == payoff.Put {
		hi = k * math.Exp(-r*T)
	}
	if !(price > lo && price < hi) {
		return math.NaN(), fmt.Errorf("%w: %v not in (%v, %v)", ErrNoArbitrageBounds, price, lo, hi)
	}

	loss := func(m Model) float64 {
		g := m.(GBM)
		return math.Pow(price-BlackScholes(s, k, T, r, g.Sigma, option), 2)
	}
	fitted, err := Fit(GBM{R: r, Sigma: 0.5}, loss)
	if err != nil {
		return math.NaN(), fmt.Errorf("implied vol: %w", err)
	}
	return fitted.(GBM).Sigma, nil
}
