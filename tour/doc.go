// Package tour provides a deterministic nearest-neighbor construction
// heuristic for the Travelling Salesman Problem over 2D cities.
//
// Overview:
//
//   - A city is a Node: a unique non-negative id plus (x, y) coordinates.
//     Identity is id-based; Nodes are plain values and copy freely.
//   - Build grows a closed cycle from a chosen start city by repeatedly
//     hopping to the closest not-yet-visited city, then returns to the start.
//   - The result is a Tour: the visiting order (Path), the per-hop distances
//     (Weights, with a leading zero), and their exact sum (TotalDistance).
//
// When to use:
//
//   - You need a fast, reproducible "good enough" round trip, not an optimal
//     one: nearest-neighbor is a construction heuristic with no quality
//     bound, and this package deliberately ships no improvement passes.
//   - As the seed tour for an external 2-opt/3-opt refiner.
//
// Determinism:
//
//   - Given a fixed slice order of the input collection and a fixed start
//     id, Build produces a bit-identical Tour on every call. Ties for the
//     minimal distance go to the first city in iteration order, so callers
//     relying on a specific tie-break must fix the collection's order.
//
// Performance and complexity:
//
//   - Time:  O(n²) — each of the n−1 selections scans up to n cities.
//     Intrinsic to the heuristic; no spatial index is used.
//   - Space: O(n) — the visited set and the accumulating Tour.
//
// Error handling (sentinel errors):
//
//   - ErrNoCities:         nil/empty collection (a tour needs ≥ 1 city).
//   - ErrNegativeID:       a city carries a negative identifier.
//   - ErrNonFiniteCoord:   a city carries a NaN or ±Inf coordinate.
//   - ErrDuplicateID:      two cities share an id.
//   - ErrDistanceOverflow: a hop's distance overflowed float64 (+Inf) even
//     though both endpoints carry finite coordinates.
//   - ErrStartNotFound:    Options.StartID unknown under StrictStart (the
//     default); set OnMissingStart=FallbackFirst to substitute cities[0]
//     deterministically instead.
//   - ErrInvalidTour:      a Tour handed to ValidateTour/TourDistance breaks
//     the closed-cycle invariants.
//
// Concurrency:
//
//   - One Build call is single-threaded and synchronous with no suspension
//     points; all working state is local to the call. Sharing one immutable
//     city slice across concurrent Build calls is safe — the input is only
//     ever read.
//
// Example usage:
//
//	cities := []tour.Node{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 3, Y: 4}}
//	t, err := tour.Build(cities, tour.DefaultOptions(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = t.Display(os.Stdout)
package tour
