// Package tour_test provides runnable, deterministic examples. Each example
// uses fixed integer-friendly geometry so the // Output: blocks are stable
// on every platform.
package tour_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/nntsp/tour"
)

// ExampleBuild constructs the canonical collinear instance and renders the
// resulting nearest-neighbor tour. From city 1 the builder hops to the
// closest unvisited city each time (2, then 4, then 3) and finally returns
// home.
func ExampleBuild() {
	cities := []tour.Node{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 10, Y: 0},
		{ID: 4, X: 2, Y: 0},
	}

	t, err := tour.Build(cities, tour.DefaultOptions(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = t.Display(os.Stdout)

	// Output:
	// EDGE 1 -> 2 | WEIGHT : 1
	// EDGE 2 -> 4 | WEIGHT : 1
	// EDGE 4 -> 3 | WEIGHT : 8
	// EDGE 3 -> 1 | WEIGHT : 10
	// TOTAL DISTANCE: 20
}

// ExampleResolveStart contrasts the strict default with the opt-in fallback
// when the requested start id is absent from the collection.
func ExampleResolveStart() {
	cities := []tour.Node{
		{ID: 5, X: 0, Y: 0},
		{ID: 6, X: 3, Y: 4},
	}

	// Strict (default): unknown ids are an explicit failure.
	_, err := tour.ResolveStart(cities, tour.DefaultOptions(42))
	fmt.Println(err)

	// Fallback: deterministically substitute the first listed city.
	opts := tour.DefaultOptions(42)
	opts.OnMissingStart = tour.FallbackFirst
	start, _ := tour.ResolveStart(cities, opts)
	fmt.Println(start.ID)

	// Output:
	// tour: start city id not found in collection
	// 5
}

// ExampleTour_String shows the compact debug rendering: visiting order with
// the closing hop after the bar.
func ExampleTour_String() {
	cities := []tour.Node{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 3, Y: 4},
		{ID: 3, X: 6, Y: 8},
	}

	t, _ := tour.Build(cities, tour.DefaultOptions(1))
	fmt.Println(t)

	// Output:
	// [1 2 3 | 1]
}
