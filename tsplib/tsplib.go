package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/nntsp/tour"
)

// coordSection marks the start of the coordinate records.
const coordSection = "NODE_COORD_SECTION"

// eofKeyword optionally terminates a TSPLIB file before the real EOF.
const eofKeyword = "EOF"

// Load opens path and parses it via Parse.
//
// Errors: ErrUnreadable when the file cannot be opened, plus everything
// Parse returns.
//
// Complexity: O(size of file).
func Load(path string) ([]tour.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSPLIB-style instance from r and returns its cities in file
// order (so downstream tie-breaking stays deterministic).
//
// Stages:
//  1. Skip metadata lines until one containing NODE_COORD_SECTION.
//  2. Read "id x y" records until end of input or the EOF keyword.
//  3. Reject negative ids, duplicate ids, and empty instances.
//
// Errors: ErrUnreadable (underlying read failure), ErrMalformed (anything
// structurally wrong), both wrapped with line context for errors.Is.
//
// Complexity: O(size of input) time, O(n) space.
func Parse(r io.Reader) ([]tour.Node, error) {
	sc := bufio.NewScanner(r)

	// Stage 1 — skip metadata until the coordinate section begins.
	var inSection bool
	for sc.Scan() {
		if strings.Contains(sc.Text(), coordSection) {
			inSection = true
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !inSection {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformed, coordSection)
	}

	// Stage 2 — one "id x y" record per line.
	var (
		cities []tour.Node
		seen   = make(map[int]struct{})
		lineNo int

		text   string
		fields []string
		id     int
		x, y   float64
		err    error
		ok     bool
	)
	for sc.Scan() {
		lineNo++
		text = strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == eofKeyword {
			break
		}

		fields = strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: record %d: want \"id x y\", got %q", ErrMalformed, lineNo, text)
		}
		if id, err = strconv.Atoi(fields[0]); err != nil || id < 0 {
			return nil, fmt.Errorf("%w: record %d: bad id %q", ErrMalformed, lineNo, fields[0])
		}
		// Coordinates must be real-valued: strconv accepts NaN/Inf tokens,
		// which are meaningless as positions and poison distance
		// comparisons downstream, so they are malformed here.
		if x, err = strconv.ParseFloat(fields[1], 64); err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: record %d: bad x-coordinate %q", ErrMalformed, lineNo, fields[1])
		}
		if y, err = strconv.ParseFloat(fields[2], 64); err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: record %d: bad y-coordinate %q", ErrMalformed, lineNo, fields[2])
		}
		if _, ok = seen[id]; ok {
			return nil, fmt.Errorf("%w: record %d: duplicate id %d", ErrMalformed, lineNo, id)
		}
		seen[id] = struct{}{}

		cities = append(cities, tour.Node{ID: id, X: x, Y: y})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	// Stage 3 — an instance with zero cities cannot seed a tour.
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: no city records after %s", ErrMalformed, coordSection)
	}

	return cities, nil
}
