// Package linsolve solves dense square linear systems A·x = b and compares
// how accurately different methods do it.
//
// The module is organized as:
//
//	matrix/      dense storage, augmentation, residuals, error norms, gonum interop
//	solver/      Gaussian elimination with partial pivoting, back-substitution, Gauss-Seidel
//	dataset/     the built-in 5×5 system and CSV loaders for A, b and x
//	report/      per-method accuracy, residual, iteration and timing reports
//	config/      viper-backed run configuration (file, LINSOLVE_* env, flags)
//	cmd/linsolve the command-line front end (solve, inspect, version)
//
// Quick start:
//
//	A, b := dataset.SmallSystem()
//	x, err := solver.SolveDirect(A, b)
//	if err != nil {
//		// errors.Is(err, solver.ErrSingular) for a singular A
//	}
//	d, _ := matrix.LInf(x, dataset.SmallSolution())
package linsolve
