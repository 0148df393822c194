// Package tour — validation utilities shared by the builder and callers.
//
// This file contains small, side-effect-free helpers that:
//  1. Validate city collections (shape, id domain, uniqueness).
//  2. Enforce the closed-cycle invariants on a finished Tour.
//  3. Recompute a Tour's length from scratch for cross-checking.
//
// No logging, no panics on user input — only sentinel errors from types.go.
package tour

import "math"

// ValidateCities verifies the city-collection contract: at least one city,
// every id non-negative, no two cities sharing an id, every coordinate
// finite (NaN/±Inf never compares meaningfully, so such cities could starve
// the greedy selection). The collection is only read.
//
// Errors: ErrNoCities, ErrNegativeID, ErrNonFiniteCoord, ErrDuplicateID.
//
// Complexity: O(n) time, O(n) space (uniqueness set).
func ValidateCities(cities []Node) error {
	if len(cities) == 0 {
		return ErrNoCities
	}

	seen := make(map[int]struct{}, len(cities))

	var (
		i  int  // loop index
		id int  // current id under validation
		ok bool // presence flag in the 'seen' set
	)
	for i = 0; i < len(cities); i++ {
		id = cities[i].ID
		if id < 0 {
			return ErrNegativeID
		}
		if !isFinite(cities[i].X) || !isFinite(cities[i].Y) {
			return ErrNonFiniteCoord
		}
		if _, ok = seen[id]; ok {
			return ErrDuplicateID
		}
		seen[id] = struct{}{}
	}

	return nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateTour enforces the Tour invariants for n input cities:
//
//	len(Path) == n+1, Path[0].ID == Path[n].ID == startID,
//	each city id appears exactly once in Path[0..n-1],
//	len(Weights) == len(Path), Weights[0] == 0,
//	every weight finite and non-negative.
//
// Returns nil if valid, ErrInvalidTour otherwise. It checks structure only;
// it does not recompute distances (see TourDistance for that).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int, startID int) error {
	if n <= 0 {
		return ErrInvalidTour
	}
	if len(t.Path) != n+1 || len(t.Weights) != len(t.Path) {
		return ErrInvalidTour
	}
	if t.Path[0].ID != startID || t.Path[n].ID != startID {
		return ErrInvalidTour
	}
	if t.Weights[0] != 0 {
		return ErrInvalidTour
	}

	seen := make(map[int]struct{}, n)

	var (
		i  int  // loop index
		ok bool // presence flag
	)
	for i = 0; i < n; i++ {
		if _, ok = seen[t.Path[i].ID]; ok {
			return ErrInvalidTour
		}
		seen[t.Path[i].ID] = struct{}{}
	}

	for i = 0; i < len(t.Weights); i++ {
		if math.IsNaN(t.Weights[i]) || math.IsInf(t.Weights[i], 0) || t.Weights[i] < 0 {
			return ErrInvalidTour
		}
	}

	return nil
}

// TourDistance recomputes the length of the closed walk described by t.Path
// from the coordinates alone, independent of t.Weights and t.TotalDistance.
// Useful to cross-check the builder's incremental accumulation against a
// fresh summation.
//
// Returns ErrInvalidTour when the path is too short to describe a cycle.
//
// Complexity: O(n) time, O(1) space.
func TourDistance(t Tour) (float64, error) {
	if len(t.Path) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		sum float64
		i   int
	)
	for i = 1; i < len(t.Path); i++ {
		sum += t.Path[i-1].Distance(t.Path[i])
	}

	return sum, nil
}
