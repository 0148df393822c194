// Package nntsp is a small, deterministic toolkit for building approximate
// Travelling Salesman tours with the nearest-neighbor construction heuristic.
//
// 🚀 What is nntsp?
//
//	A focused, pure-Go library that takes a set of 2D cities and greedily
//	grows a closed tour, always hopping to the closest not-yet-visited city:
//		• tour/   — the core: Node & Tour values, start-city resolution,
//		            the O(n²) nearest-neighbor builder, invariant validators
//		• tsplib/ — a NODE_COORD_SECTION reader for TSPLIB-style city files
//		• cmd/    — a thin command that wires file → tour → stdout
//
// ✨ Why choose nntsp?
//
//   - Deterministic – fixed input order in, bit-identical Tour out
//   - Strict sentinels – explicit errors instead of silent fallbacks
//   - Pure Go – no cgo, no hidden deps
//   - Honest about quality – a construction heuristic, not an optimizer;
//     no improvement passes, no optimality guarantees, by scope
//
// Quick ASCII example (start at A, nearest first):
//
//	A──1──B──1──D──8──C      tour:    A → B → D → C → A
//	                         weights: 0, 1, 1, 8, then 10 back home
//
// Dive into tour/doc.go for contracts, complexity and the full error list.
//
//	go get github.com/katalvlaran/nntsp/tour
package nntsp
