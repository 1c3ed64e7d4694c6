package pricer

import (
	"fmt"
	"time"

	"github.com/banachtech/mcoption/util"
)

// ConvergencePoint is the estimate obtained with a given number of paths.
type ConvergencePoint struct {
	Paths  int     `json:"paths"`
	Price  float64 `json:"price"`
	StdErr float64 `json:"std_error"`
}

// Converge re-prices p at each path count, smallest first, sharing one seed so the
// estimates differ only by sample size. progress, if non-nil, is called after each count.
func Converge(p Parameters, counts []int, progress func(done int)) ([]ConvergencePoint, uint64, error) {
	counts, err := util.SortedCounts(counts)
	if err != nil {
		return nil, 0, err
	}

	seed := uint64(time.Now().UnixNano())
	if p.Seed != nil {
		seed = *p.Seed
	}
	p.Seed = &seed
	p.SamplePaths = 0

	out := make([]ConvergencePoint, 0, len(counts))
	for i, n := range counts {
		p.Paths = n
		res, err := Simulate(p)
		if err != nil {
			return nil, seed, fmt.Errorf("paths=%d: %w", n, err)
		}
		out = append(out, ConvergencePoint{Paths: n, Price: res.Price, StdErr: res.StdErr})
		if progress != nil {
			progress(i + 1)
		}
	}
	return out, seed, nil
}
