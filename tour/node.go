// Package tour — Node geometry.
package tour

import "math"

// Distance returns the straight-line (Euclidean) distance between n and
// other: √((Δx)² + (Δy)²). The result is a plain float64 used uniformly for
// greedy comparisons, per-hop Weights entries, and TotalDistance
// accumulation, so summed distances and pairwise comparisons stay mutually
// consistent (no truncation anywhere).
//
// Pure function of the two coordinate pairs: no side effects, no failure
// modes; Distance(n, n) == 0 and the result is always non-negative.
//
// Complexity: O(1).
func (n Node) Distance(other Node) float64 {
	return math.Hypot(other.X-n.X, other.Y-n.Y)
}
