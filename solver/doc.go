// Package solver solves dense square linear systems A·x = b.
//
// Two families are provided:
//
//   - Direct: Eliminate (Gaussian elimination with partial pivoting over a
//     logical row permutation) followed by BackSubstitute. SolveDirect chains
//     Augment → Eliminate → BackSubstitute.
//   - Iterative: GaussSeidel refines an estimate in place, sweep after sweep,
//     until a step or residual test passes or the iteration budget runs out.
//     SolveIterative is the (A, b) convenience form.
//
// Solve dispatches on a Method and returns a uniform Result carrying the
// solution, the iterations used, a convergence flag and the residual norm.
//
// Inputs are copied on entry; nothing owned by the caller is ever mutated,
// so every function is safe to call repeatedly on the same data.
//
// Configuration uses functional options:
//
//	res, err := solver.Solve(solver.MethodGaussSeidel, A, b,
//		solver.WithMaxIterations(500),
//		solver.WithTolerance(1e-8),
//		solver.WithStopRule(solver.StopOnStep),
//	)
//
// Numerical singularity is reported through ErrSingular. Under the default
// SkipSingular policy elimination keeps going past a near-zero pivot and the
// zero diagonal surfaces in BackSubstitute; FailSingular reports it at once.
package solver
