// Package tour - core types, options, and sentinel errors for the
// nearest-neighbor tour builder.
package tour

import "errors"

// Sentinel errors returned by the tour package.
var (
	// ErrNoCities indicates that the city collection is nil or empty.
	// A tour needs at least one city to be computable.
	ErrNoCities = errors.New("tour: city collection must contain at least one city")

	// ErrDuplicateID indicates that two cities in the collection share an id.
	// Identity is id-based, so duplicates make the visited-set bookkeeping
	// ambiguous and the input is rejected outright.
	ErrDuplicateID = errors.New("tour: duplicate city id in collection")

	// ErrNegativeID indicates a city with a negative identifier.
	// Ids are non-negative by contract.
	ErrNegativeID = errors.New("tour: city id must be non-negative")

	// ErrNonFiniteCoord indicates a city with a NaN or ±Inf coordinate.
	// Coordinates are real-valued by contract; a NaN distance would starve
	// the greedy comparison, so such cities are rejected up front.
	ErrNonFiniteCoord = errors.New("tour: city coordinate is not finite")

	// ErrDistanceOverflow indicates that a pairwise distance overflowed
	// float64 (+Inf) even though both coordinates are finite — possible for
	// coordinate deltas near ±math.MaxFloat64. A tour containing such a hop
	// has no meaningful total, so construction fails instead.
	ErrDistanceOverflow = errors.New("tour: pairwise distance overflows float64")

	// ErrStartNotFound indicates that Options.StartID matched no city and the
	// missing-start policy is StrictStart.
	ErrStartNotFound = errors.New("tour: start city id not found in collection")

	// ErrInvalidTour indicates that a Tour violates the closed-cycle
	// invariants (shape, closure, per-city uniqueness, weight layout).
	ErrInvalidTour = errors.New("tour: tour violates cycle invariants")
)

// MissingStartPolicy controls what ResolveStart does when Options.StartID is
// absent from the city collection.
//
// StrictStart   – fail with ErrStartNotFound (default; an unknown start id
// usually means the caller picked the wrong instance).
// FallbackFirst – deterministically substitute the first city in collection
// order; callers who rely on this must fix the collection's order.
type MissingStartPolicy int

const (
	// StrictStart rejects an unknown start id with ErrStartNotFound.
	StrictStart MissingStartPolicy = iota

	// FallbackFirst substitutes cities[0] when the start id is unknown.
	FallbackFirst
)

// Options configures start-city resolution and tour construction.
//
// StartID        – identifier of the city the tour starts and ends at.
// OnMissingStart – policy applied when StartID matches no city (see above).
type Options struct {
	StartID        int                // id of the requested starting city
	OnMissingStart MissingStartPolicy // behavior for an unknown StartID
}

// DefaultOptions returns Options initialized with sensible defaults for the
// given start id. Use this as a starting point and override fields as needed.
//
// Defaults:
//   - StartID:        <as passed> (validated during resolution, not here).
//   - OnMissingStart: StrictStart (unknown ids are an explicit failure).
func DefaultOptions(startID int) Options {
	return Options{
		StartID:        startID,
		OnMissingStart: StrictStart,
	}
}

// Node is an immutable city value: a unique non-negative identifier plus 2D
// coordinates. Two Nodes denote the same city iff their IDs are equal;
// coordinate equality is irrelevant to identity. Nodes are copied freely
// (value semantics) - no shared mutable ownership anywhere in this package.
type Node struct {
	ID int     // unique non-negative identifier within one collection
	X  float64 // x-coordinate
	Y  float64 // y-coordinate
}

// Tour is the output value of Build: a closed cycle over every input city.
//
// Invariants (enforced by ValidateTour):
//   - len(Path) == n+1 for n input cities; Path[0] and Path[n] are the start.
//   - Every input city appears in Path[0..n-1] exactly once.
//   - len(Weights) == len(Path); Weights[0] == 0; Weights[i] for i≥1 is the
//     distance from Path[i-1] to Path[i].
//   - TotalDistance == Σ Weights[1:] exactly (same float64 values summed).
//
// Path holds independent Node copies: the input collection may be mutated or
// discarded after Build without affecting the returned Tour.
type Tour struct {
	Path          []Node    // visiting order, closed back to the start
	Weights       []float64 // per-hop distances, leading zero included
	TotalDistance float64   // length of the whole cycle
}
