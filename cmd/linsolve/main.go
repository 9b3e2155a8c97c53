// SPDX-License-Identifier: MIT

// Command linsolve solves dense linear systems with Gaussian elimination and
// Gauss-Seidel and reports how accurate each method was.
//
//	linsolve solve --small
//	linsolve solve --matrix A.csv --rhs b.csv --solution x.csv --method gauss-seidel
//	linsolve inspect --matrix A.csv
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

	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
