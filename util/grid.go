package util

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// TimeGrid returns steps+1 equally spaced times from 0 to T inclusive.
func TimeGrid(T float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, errors.New("time grid needs at least one step")
	}
	grid := floats.Span(make([]float64, steps+1), 0, T)
	grid[steps] = T
	return grid, nil
}

// Increments returns the differences between consecutive grid points.
func Increments(grid []float64) []float64 {
	if len(grid) < 2 {
		return nil
	}
	dt := make([]float64, len(grid)-1)
	for i := range dt {
		dt[i] = grid[i+1] - grid[i]
	}
	return dt
}

// SortedCounts sorts the requested path counts ascending and drops duplicates and non-positive values.
func SortedCounts(counts []int) ([]int, error) {
	var unique []int
	sorted := append([]int(nil), counts...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v < 1 {
			continue
		}
		if i > 0 && v == sorted[i-1] {
			continue
		}
		unique = append(unique, v)
	}
	if len(unique) == 0 {
		return nil, errors.New("there are no positive path counts")
	}
	return unique, nil
}
