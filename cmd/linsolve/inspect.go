// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/dataset"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
)

func newInspectCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print conditioning diagnostics of a coefficient matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.resolve(cmd)
			if err != nil {
				return err
			}

			var a *matrix.Dense
			switch {
			case cfg.Small:
				a, _ = dataset.SmallSystem()
			case cfg.MatrixPath != "":
				if a, err = dataset.ReadMatrixCSV(cfg.MatrixPath); err != nil {
					return err
				}
			default:
				return fmt.Errorf("%w: --%s or --%s is required", config.ErrInvalid, config.KeySmall, config.KeyMatrix)
			}
			log.WithField("n", a.Rows()).Debug("matrix loaded")

			d, err := report.Diagnose(a)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Size:\t%d\n", d.N)
			fmt.Fprintf(w, "Infinity norm:\t%g\n", d.InfNorm)
			fmt.Fprintf(w, "Condition (inf):\t%g\n", d.Cond)
			fmt.Fprintf(w, "Diagonally dominant:\t%t\n", d.DiagonallyDominant)

			return w.Flush()
		},
	}
	addSystemFlags(cmd.Flags())

	return cmd
}
