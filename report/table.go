// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

const missing = "-"

var tableHeader = []string{"METHOD", "ITERATIONS", "CONVERGED", "RESIDUAL", "L1", "L2", "LINF", "TIME", "ERROR"}

// WriteTable renders the diagnostics followed by one aligned row per method.
func (r *Report) WriteTable(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	d := r.Diagnostics
	fmt.Fprintf(w, "System:\t%s\n", r.System)
	fmt.Fprintf(w, "Size:\t%d\n", d.N)
	fmt.Fprintf(w, "Infinity norm:\t%s\n", num(d.InfNorm))
	fmt.Fprintf(w, "Condition (inf):\t%s\n", num(d.Cond))
	fmt.Fprintf(w, "Diagonally dominant:\t%t\n", d.DiagonallyDominant)
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Join(tableHeader, "\t"))
	for _, e := range r.Entries {
		fmt.Fprintln(w, strings.Join(e.cells(), "\t"))
	}

	return w.Flush()
}

func (e Entry) cells() []string {
	if e.Err != nil {
		return []string{e.Method.String(), missing, missing, missing, missing, missing, missing, e.Elapsed.String(), e.Err.Error()}
	}
	l1, l2, linf := missing, missing, missing
	if e.HasReference {
		l1, l2, linf = num(e.L1), num(e.L2), num(e.LInf)
	}

	return []string{
		e.Method.String(),
		strconv.Itoa(e.Iterations),
		converged(e),
		num(e.Residual),
		l1, l2, linf,
		e.Elapsed.String(),
		missing,
	}
}

func converged(e Entry) string {
	if e.Diverged {
		return "diverged"
	}

	return strconv.FormatBool(e.Converged)
}

func num(v float64) string { return strconv.FormatFloat(v, 'e', 3, 64) }
