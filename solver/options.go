// SPDX-License-Identifier: MIT

// Package solver: functional configuration for elimination and iteration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: WithX constructors panic only on nonsensical values
//     (programmer error); user data problems are reported as errors.
package solver

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotThreshold is the magnitude below which a pivot (or a
	// back-substitution diagonal) is treated as zero.
	DefaultPivotThreshold = 1e-10

	// DefaultMaxIterations bounds the number of Gauss-Seidel sweeps.
	DefaultMaxIterations = 10000

	// DefaultTolerance is the Gauss-Seidel convergence tolerance.
	DefaultTolerance = 1e-10

	// DefaultSingularPolicy keeps the degrade-rather-than-fail elimination behavior.
	DefaultSingularPolicy = SkipSingular

	// DefaultStopRule enables both termination tests.
	DefaultStopRule = StopOnStepOrResidual
)

// ---------- Internal panic messages ----------

const (
	panicPivotThresholdInvalid = "solver: WithPivotThreshold: threshold must be finite, non-negative"
	panicMaxIterationsInvalid  = "solver: WithMaxIterations: n must be > 0"
	panicToleranceInvalid      = "solver: WithTolerance: tol must be finite, non-negative"
	panicSingularPolicyInvalid = "solver: WithSingularPolicy: unknown policy"
	panicStopRuleInvalid       = "solver: WithStopRule: rule must enable at least one test"
	panicLoggerNil             = "solver: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotThreshold float64
	singular       SingularPolicy
	maxIterations  int
	tolerance      float64
	stop           StopRule
	initialGuess   []float64
	logger         logrus.FieldLogger
}

// WithPivotThreshold sets the near-zero pivot threshold (default 1e-10).
func WithPivotThreshold(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotThresholdInvalid)
	}

	return func(o *Options) { o.pivotThreshold = eps }
}

// WithSingularPolicy chooses between skipping and failing on a near-zero pivot.
func WithSingularPolicy(p SingularPolicy) Option {
	if p != SkipSingular && p != FailSingular {
		panic(panicSingularPolicyInvalid)
	}

	return func(o *Options) { o.singular = p }
}

// WithMaxIterations bounds the number of Gauss-Seidel sweeps (default 10000).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithTolerance sets the Gauss-Seidel convergence tolerance (default 1e-10).
// A zero tolerance disables early stopping in practice.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithStopRule selects which termination tests Gauss-Seidel applies.
func WithStopRule(r StopRule) Option {
	if r&StopOnStepOrResidual == 0 || r&^StopOnStepOrResidual != 0 {
		panic(panicStopRuleInvalid)
	}

	return func(o *Options) { o.stop = r }
}

// WithInitialGuess starts Gauss-Seidel from x0 instead of the zero vector.
// The slice is copied when the solve starts; its length is checked there.
func WithInitialGuess(x0 []float64) Option {
	cp := append([]float64(nil), x0...)

	return func(o *Options) { o.initialGuess = cp }
}

// WithLogger routes per-stage debug records (pivot choices, skipped columns,
// convergence) to l. The default logger discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// PivotThreshold reports the resolved pivot threshold.
func (o Options) PivotThreshold() float64 { return o.pivotThreshold }

// SingularPolicy reports the resolved singular-pivot policy.
func (o Options) SingularPolicy() SingularPolicy { return o.singular }

// MaxIterations reports the resolved iteration budget.
func (o Options) MaxIterations() int { return o.maxIterations }

// Tolerance reports the resolved convergence tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// StopRule reports the resolved termination tests.
func (o Options) StopRule() StopRule { return o.stop }

func gatherOptions(user ...Option) Options {
	o := Options{
		pivotThreshold: DefaultPivotThreshold,
		singular:       DefaultSingularPolicy,
		maxIterations:  DefaultMaxIterations,
		tolerance:      DefaultTolerance,
		stop:           DefaultStopRule,
		logger:         discardLogger,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

var discardLogger logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}
