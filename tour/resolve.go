// Package tour — start-city resolution.
package tour

// ResolveStart scans cities in slice order for the Node whose ID equals
// opts.StartID and returns it.
//
// When no city matches, the outcome depends on opts.OnMissingStart:
//   - StrictStart (default): ErrStartNotFound. Silently substituting another
//     city would produce a tour over an unintended starting point.
//   - FallbackFirst: cities[0] — a fixed, documented element, so the
//     fallback stays deterministic for a fixed collection order.
//
// An unknown policy value is treated as StrictStart (the safe reading).
// cities is only read, never mutated.
//
// Errors: ErrNoCities, ErrStartNotFound.
//
// Complexity: O(n) time, O(1) space.
func ResolveStart(cities []Node, opts Options) (Node, error) {
	if len(cities) == 0 {
		return Node{}, ErrNoCities
	}

	var i int // loop index
	for i = 0; i < len(cities); i++ {
		if cities[i].ID == opts.StartID {
			return cities[i], nil
		}
	}

	if opts.OnMissingStart == FallbackFirst {
		return cities[0], nil
	}

	return Node{}, ErrStartNotFound
}
