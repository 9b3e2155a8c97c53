// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/report"
)

// errMethodFailed is returned when at least one method could not solve the system.
var errMethodFailed = errors.New("one or more methods failed")

func newSolveCommand(root *rootOptions) *cobra.Command {
	var showSolution bool
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a system with one or more methods and report their accuracy",
		Long: `Solve A x = b with Gaussian elimination (partial pivoting and
back-substitution) and/or Gauss-Seidel iteration. When a reference solution is
available the L1, L2 and L-infinity errors of every method are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.resolve(cmd)
			if err != nil {
				return err
			}
			sys, err := cfg.System()
			if err != nil {
				return err
			}
			methods, err := cfg.Methods()
			if err != nil {
				return err
			}
			opts, err := cfg.SolverOptions()
			if err != nil {
				return err
			}

			rep, err := report.Run(cmd.Context(), sys, methods, log, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err = rep.WriteTable(out); err != nil {
				return err
			}
			if showSolution {
				for _, e := range rep.Entries {
					if e.Err == nil {
						fmt.Fprintf(out, "%s: %v\n", e.Method, e.X)
					}
				}
			}
			if rep.Failed() {
				return errMethodFailed
			}

			return nil
		},
	}

	fs := cmd.Flags()
	addSystemFlags(fs)
	fs.String(config.KeyMethod, d.Method, "Methods to run: direct, gauss-seidel, a comma-separated list, or all")
	fs.Int(config.KeyMaxIterations, d.MaxIterations, "Gauss-Seidel iteration budget")
	fs.Float64(config.KeyTolerance, d.Tolerance, "Gauss-Seidel convergence tolerance")
	fs.Float64(config.KeyPivotThreshold, d.PivotThreshold, "Magnitude below which a pivot is treated as zero")
	fs.String(config.KeySingularPolicy, d.SingularPolicy, "Near-zero pivot handling during elimination (skip or fail)")
	fs.String(config.KeyStopRule, d.StopRule, "Gauss-Seidel stop test (step, residual or both)")
	fs.BoolVar(&showSolution, "show-solution", false, "Print every computed solution vector")

	return cmd
}
