// Package tour_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal and
// avoid duplicating functionality under test.
package tour_test

import (
	"math"

	"github.com/katalvlaran/nntsp/tour"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// startA is the canonical start id used across tests.
	startA = 1

	// ringN is the default instance size for circle-based invariant tests.
	ringN = 17
)

// -----------------------------------------------------------------------------
// Deterministic instance generators
// -----------------------------------------------------------------------------

// lineCities returns the canonical collinear layout
//
//	A(0,0) id=1, B(1,0) id=2, C(10,0) id=3, D(2,0) id=4,
//
// whose nearest-neighbor tour from A is A→B→D→C→A with weights
// [0, 1, 1, 8, 10] and total 20. Slice order matters: C precedes D so the
// greedy scan must pick by distance, not position.
func lineCities() []tour.Node {
	return []tour.Node{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 10, Y: 0},
		{ID: 4, X: 2, Y: 0},
	}
}

// ringCities places n cities on a slightly rippled circle (deterministic,
// tie-free geometry). Ids are 1..n in slice order.
func ringCities(n int) []tour.Node {
	var (
		out = make([]tour.Node, n)
		i   int
		th  float64
		r   float64
	)
	for i = 0; i < n; i++ {
		th = 2.0 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7) // deterministic ripple avoids ties
		out[i] = tour.Node{ID: i + 1, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return out
}

// weightSum returns a fresh left-to-right sum of Weights[1:], used to
// cross-check TotalDistance against an independent summation.
func weightSum(t tour.Tour) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(t.Weights); i++ {
		sum += t.Weights[i]
	}

	return sum
}
