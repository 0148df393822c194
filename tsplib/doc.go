// Package tsplib reads city collections from TSPLIB-style coordinate files.
//
// The accepted shape is the NODE_COORD_SECTION subset of the TSPLIB format:
// any number of metadata lines, then a line containing NODE_COORD_SECTION,
// then one "id x y" record per line until the end of input or the EOF
// keyword. Example:
//
//	NAME: demo
//	TYPE: TSP
//	DIMENSION: 3
//	NODE_COORD_SECTION
//	1 0.0 0.0
//	2 3.0 4.0
//	3 6.0 0.0
//	EOF
//
// Contract: produce a collection of tour.Node values with unique,
// non-negative ids and real-valued coordinates — or fail distinctly:
//
//   - ErrUnreadable: the source could not be opened or read (I/O failure).
//   - ErrMalformed:  the source was read but is not a valid instance
//     (no NODE_COORD_SECTION, a record that is not an "id x y" triple,
//     a negative or duplicate id, a NaN/Inf coordinate, or zero records).
//
// Both sentinels are wrapped with positional context; match them with
// errors.Is. Parsing failures are never conflated with tour-construction
// failures — those live in the tour package.
package tsplib
