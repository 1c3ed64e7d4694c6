package mc

import (
	"math"
	"testing"

	"github.com/banachtech/mcoption/payoff"
	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	m := GBM{R: 0.05, Sigma: 0.2}

	// z = 0 leaves only the drift term
	require.InEpsilon(t, 100*math.Exp(0.03), m.Terminal(100, 1, 0), 1e-12)
	require.InEpsilon(t, 100*math.Exp(0.03+0.2*1.5), m.Terminal(100, 1, 1.5), 1e-12)

	flat := GBM{R: 0.05}
	for _, z := range []float64{-3, 0, 0.7, 4} {
		require.InEpsilon(t, 100*math.Exp(0.05*2), flat.Terminal(100, 2, z), 1e-12)
	}
}

func TestPath(t *testing.T) {
	m := GBM{R: 0.03, Sigma: 0.25}
	dt := []float64{0.25, 0.25, 0.25, 0.25}
	z := []float64{0.1, -0.4, 1.2, 0.3}

	p := m.Path(50, dt, z)
	require.Len(t, p, len(dt)+1)
	require.Equal(t, 50.0, p[0])

	sum := 0.0
	for _, v := range z {
		sum += v
	}
	// one step of total length 1 with the summed increment lands on the same price
	want := m.Terminal(50, 1, sum/2)
	require.InEpsilon(t, want, p[len(p)-1], 1e-12)
}

func TestGetSet(t *testing.T) {
	m := GBM{R: 0.01, Sigma: 0.3}
	p := m.Get()
	require.Len(t, p, 1)
	require.InDelta(t, math.Log(0.3), p[0], 1e-15)

	got := m.Set([]float64{math.Log(0.45)}).(GBM)
	require.InDelta(t, 0.45, got.Sigma, 1e-12)
	require.Equal(t, 0.01, got.R)
}

func TestBlackScholes(t *testing.T) {
	call := BlackScholes(100, 100, 1, 0.05, 0.2, payoff.Call)
	put := BlackScholes(100, 100, 1, 0.05, 0.2, payoff.Put)
	require.InDelta(t, 10.450583572185565, call, 1e-9)
	require.InDelta(t, 5.573526022256971, put, 1e-9)

	// put-call parity
	require.InDelta(t, 100-100*math.Exp(-0.05), call-put, 1e-9)

	// deterministic growth
	require.InDelta(t, 100-90*math.Exp(-0.05), BlackScholes(100, 90, 1, 0.05, 0, payoff.Call), 1e-12)
	require.Equal(t, 0.0, BlackScholes(100, 90, 1, 0.05, 0, payoff.Put))
}

func TestImpliedVol(t *testing.T) {
	for _, test := range []struct {
		name   string
		k, T   float64
		sigma  float64
		option payoff.OptionType
	}{
		{name: "ATM_CALL", k: 100, T: 1, sigma: 0.2, option: payoff.Call},
		{name: "OTM_PUT", k: 80, T: 0.5, sigma: 0.35, option: payoff.Put},
		{name: "ITM_CALL", k: 90, T: 2, sigma: 0.6, option: payoff.Call},
	} {
		t.Run(test.name, func(t *testing.T) {
			price := BlackScholes(100, test.k, test.T, 0.05, test.sigma, test.option)
			got, err := ImpliedVol(price, 100, test.k, test.T, 0.05, test.option)
			require.NoError(t, err)
			require.InDelta(t, test.sigma, got, 1e-3)
		})
	}

	_, err := ImpliedVol(150, 100, 100, 1, 0.05, payoff.Call)
	require.ErrorIs(t, err, ErrNoArbitrageBounds)

	_, err = ImpliedVol(1, 100, 100, 0, 0.05, payoff.Call)
	require.Error(t, err)
}
