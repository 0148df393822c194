// Package tour — presentation helpers layered on top of the Tour value.
//
// Rendering is an external concern relative to construction: both helpers
// read Path/Weights/TotalDistance and never mutate the Tour.
package tour

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Display writes the tour to w, one line per edge followed by the total:
//
//	EDGE 1 -> 3 | WEIGHT : 5
//	EDGE 3 -> 1 | WEIGHT : 5
//	TOTAL DISTANCE: 10
//
// Each consecutive Path pair is a directed edge labeled with the matching
// Weights entry (the leading zero weight is skipped — it is not an edge).
//
// Complexity: O(n) writes.
func (t Tour) Display(w io.Writer) error {
	var (
		i   int
		err error
	)
	for i = 1; i < len(t.Path); i++ {
		_, err = fmt.Fprintf(w, "EDGE %d -> %d | WEIGHT : %g\n", t.Path[i-1].ID, t.Path[i].ID, t.Weights[i])
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "TOTAL DISTANCE: %g\n", t.TotalDistance)

	return err
}

// String returns a compact printable representation for tests/debug,
// e.g. "[1 2 4 | 1]" where the vertical bar marks the closing hop.
//
// Complexity: O(n) time, O(n) space for formatting.
func (t Tour) String() string {
	if len(t.Path) == 0 {
		return "[]"
	}

	var (
		n = len(t.Path) - 1
		b strings.Builder
		i int
	)
	b.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(t.Path[i].ID))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(t.Path[n].ID))
	b.WriteByte(']')

	return b.String()
}
