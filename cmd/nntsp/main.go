package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/nntsp/tour"
	"github.com/katalvlaran/nntsp/tsplib"
)

// Exit codes: 2 for usage mistakes (flag convention), 1 for any parse or
// tour-construction failure.
const (
	exitFailure = 1
	exitUsage   = 2
)

// main is a thin boundary: parse flags, load the instance, build the tour,
// render it. All real logic lives in tsplib and tour.
func main() {
	var (
		file    = flag.String("f", "", "path to a TSPLIB-style .tsp file (required)")
		start   = flag.Int("start", 1, "identifier of the starting city")
		lenient = flag.Bool("lenient", false, "fall back to the first listed city when -start is unknown")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "nntsp: -f <file.tsp> is required")
		flag.Usage()
		os.Exit(exitUsage)
	}

	cities, err := tsplib.Load(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}

	opts := tour.DefaultOptions(*start)
	if *lenient {
		opts.OnMissingStart = tour.FallbackFirst
	}

	t, err := tour.Build(cities, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}

	if err = t.Display(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
