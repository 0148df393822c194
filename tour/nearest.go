// Package tour — nearest-neighbor tour construction.
//
// Build is the primary entry point of this module: it grows a closed cycle
// over every input city by always extending the path to the closest
// not-yet-visited city, then returning to the start.
//
// Design principles (shared across the package):
//   - Deterministic: fixed collection order + fixed start id ⇒ bit-identical
//     Tour; no randomness, no external state, no time-based behavior.
//   - Strict sentinels: only errors from types.go; preconditions are
//     validated up front, the greedy loop itself has no failure path.
//   - Hot-path discipline: slices preallocated to n+1, visited set presized,
//     loop variables predeclared; the input collection is never mutated.
package tour

import "math"

// Build constructs a nearest-neighbor tour over cities, starting (and
// ending) at the city opts.StartID resolves to.
//
// Algorithm:
//  1. Validate the collection (non-empty, non-negative unique ids) and
//     resolve the start city via ResolveStart.
//  2. Seed the tour: Path=[start], Weights=[0], visited={start.ID}.
//  3. Until every city is visited: scan all unvisited cities from the
//     current one, pick the strictly minimal distance (ties go to the first
//     city encountered in slice order), append it to Path and its distance
//     to Weights, accumulate TotalDistance, mark it visited, advance.
//  4. Close the cycle: append the distance from the last city back to the
//     start, then the start city itself.
//
// The returned Tour holds independent Node copies; the caller may mutate or
// discard cities afterwards. A single-city collection yields the degenerate
// Tour Path=[A,A], Weights=[0,0], TotalDistance=0.
//
// Errors: ErrNoCities, ErrNegativeID, ErrNonFiniteCoord, ErrDuplicateID,
// ErrStartNotFound, ErrDistanceOverflow.
//
// Complexity: O(n²) time (full unvisited scan per selection — intrinsic to
// the heuristic, no spatial index), O(n) space.
func Build(cities []Node, opts Options) (Tour, error) {
	// Stage 1 — precondition checks, front-loaded so the loop stays pure.
	if err := ValidateCities(cities); err != nil {
		return Tour{}, err
	}
	start, err := ResolveStart(cities, opts)
	if err != nil {
		return Tour{}, err
	}

	// Stage 2 — seed the tour at the start city.
	var (
		n       = len(cities)
		path    = make([]Node, 1, n+1)
		weights = make([]float64, 1, n+1)
		visited = make(map[int]struct{}, n)
		total   float64
	)
	path[0] = start
	weights[0] = 0 // no edge leads into the start
	visited[start.ID] = struct{}{}

	// Stage 3 — greedy selection until every id is visited.
	var (
		current = start // city the next hop is measured from
		next    Node    // best candidate of the current scan
		best    float64 // distance to next
		d       float64 // scratch distance
		i       int     // loop index
		ok      bool    // visited-set membership flag
	)
	for len(visited) < n {
		// Negative seed: real distances are never negative, so the first
		// unvisited candidate is always adopted — even at distance +Inf —
		// and the loop is guaranteed to consume one city per pass.
		best = -1
		for i = 0; i < n; i++ {
			if _, ok = visited[cities[i].ID]; ok {
				continue
			}
			d = current.Distance(cities[i])
			// Strict < keeps the first-encountered city on ties.
			if best < 0 || d < best {
				best = d
				next = cities[i]
			}
		}

		// Finite coordinates can still overflow Hypot to +Inf for deltas
		// near ±math.MaxFloat64; such a hop has no meaningful weight.
		if math.IsInf(best, 1) {
			return Tour{}, ErrDistanceOverflow
		}

		path = append(path, next)
		weights = append(weights, best)
		total += best
		visited[next.ID] = struct{}{}
		current = next
	}

	// Stage 4 — close the cycle back to the start.
	var closing = current.Distance(start)
	if math.IsInf(closing, 1) {
		return Tour{}, ErrDistanceOverflow
	}
	path = append(path, start)
	weights = append(weights, closing)
	total += closing

	t := Tour{Path: path, Weights: weights, TotalDistance: total}

	// Final invariant check (O(n)) — inexpensive, catches wiring mistakes.
	if verr := ValidateTour(t, n, start.ID); verr != nil {
		return Tour{}, verr
	}

	return t, nil
}
