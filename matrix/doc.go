// Package matrix offers the dense storage and vector utilities used by the
// linear-system solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/Inf rejection).
//   - Augment / SplitAugmented to move between (A, b) and the N×(N+1)
//     augmented form consumed by elimination and Gauss-Seidel.
//   - MatVec and Residual (A·x − b).
//   - Error norms L1, L2, LInf between a computed and a reference vector,
//     VectorInfNorm, and the induced matrix InfNorm.
//   - Gonum interop: ToGonum, FromGonum and Cond.
//
// Every operation copies its inputs or reads them only; results are fresh
// allocations owned by the caller. Failures are reported through the sentinel
// errors in errors.go and are matched with errors.Is.
package matrix
