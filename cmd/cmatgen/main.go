// Command cmatgen generates oracle-verified C fixture headers for the matrix
// library test suite.
//
//	cmatgen generate                       # seven standard families to stdout
//	cmatgen generate det inverse -o tests  # tests/test_det.h, tests/test_inverse.h
//	cmatgen families                       # list families, trial counts, layouts
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "cmatgen:", err)
		stop()
		os.Exit(1)
	}
}
