// SPDX-License-Identifier: MIT

// Package config resolves a run configuration for the linsolve command from
// defaults, an optional YAML file, LINSOLVE_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linsolve/dataset"
	"github.com/katalvlaran/linsolve/solver"
)

// EnvPrefix prefixes every environment override, e.g. LINSOLVE_MAX_ITERATIONS.
const EnvPrefix = "LINSOLVE"

// Configuration keys; flags use the same names.
const (
	KeyMethod         = "method"
	KeyMaxIterations  = "max-iterations"
	KeyTolerance      = "tolerance"
	KeyPivotThreshold = "pivot-threshold"
	KeySingularPolicy = "singular-policy"
	KeyStopRule       = "stop-rule"
	KeySmall          = "small"
	KeyMatrix         = "matrix"
	KeyRHS            = "rhs"
	KeySolution       = "solution"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
)

// MethodAll selects every supported method.
const MethodAll = "all"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved run configuration.
type Config struct {
	Method         string  `mapstructure:"method"`
	MaxIterations  int     `mapstructure:"max-iterations"`
	Tolerance      float64 `mapstructure:"tolerance"`
	PivotThreshold float64 `mapstructure:"pivot-threshold"`
	SingularPolicy string  `mapstructure:"singular-policy"`
	StopRule       string  `mapstructure:"stop-rule"`

	Small        bool   `mapstructure:"small"`
	MatrixPath   string `mapstructure:"matrix"`
	RHSPath      string `mapstructure:"rhs"`
	SolutionPath string `mapstructure:"solution"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// Default returns the documented defaults, mirroring the solver package.
func Default() Config {
	return Config{
		Method:         MethodAll,
		MaxIterations:  solver.DefaultMaxIterations,
		Tolerance:      solver.DefaultTolerance,
		PivotThreshold: solver.DefaultPivotThreshold,
		SingularPolicy: solver.DefaultSingularPolicy.String(),
		StopRule:       "both",
		LogLevel:       logrus.InfoLevel.String(),
		LogFormat:      "text",
	}
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyMethod, d.Method)
	v.SetDefault(KeyMaxIterations, d.MaxIterations)
	v.SetDefault(KeyTolerance, d.Tolerance)
	v.SetDefault(KeyPivotThreshold, d.PivotThreshold)
	v.SetDefault(KeySingularPolicy, d.SingularPolicy)
	v.SetDefault(KeyStopRule, d.StopRule)
	v.SetDefault(KeySmall, d.Small)
	v.SetDefault(KeyMatrix, d.MatrixPath)
	v.SetDefault(KeyRHS, d.RHSPath)
	v.SetDefault(KeySolution, d.SolutionPath)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
}

// NewViper returns a viper instance with defaults and environment binding.
// When configFile is non-empty it is read immediately.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Validate checks every field without building anything.
func (c Config) Validate() error {
	if _, err := c.Methods(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalid, KeyMaxIterations, c.MaxIterations)
	}
	if !finiteNonNegative(c.Tolerance) {
		return fmt.Errorf("%w: %s must be finite and >= 0, got %g", ErrInvalid, KeyTolerance, c.Tolerance)
	}
	if !finiteNonNegative(c.PivotThreshold) {
		return fmt.Errorf("%w: %s must be finite and >= 0, got %g", ErrInvalid, KeyPivotThreshold, c.PivotThreshold)
	}
	if _, err := solver.ParseSingularPolicy(c.SingularPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := solver.ParseStopRule(c.StopRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalid, KeyLogFormat, c.LogFormat)
	}

	return nil
}

// Methods expands the method setting; "all" selects every solver method.
func (c Config) Methods() ([]solver.Method, error) {
	if strings.EqualFold(strings.TrimSpace(c.Method), MethodAll) {
		return solver.Methods(), nil
	}
	var out []solver.Method
	for _, name := range strings.Split(c.Method, ",") {
		m, err := solver.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// SolverOptions maps the numeric settings onto solver options.
// Call Validate first; invalid values would make the option constructors panic.
func (c Config) SolverOptions() ([]solver.Option, error) {
	policy, err := solver.ParseSingularPolicy(c.SingularPolicy)
	if err != nil {
		return nil, err
	}
	rule, err := solver.ParseStopRule(c.StopRule)
	if err != nil {
		return nil, err
	}

	return []solver.Option{
		solver.WithMaxIterations(c.MaxIterations),
		solver.WithTolerance(c.Tolerance),
		solver.WithPivotThreshold(c.PivotThreshold),
		solver.WithSingularPolicy(policy),
		solver.WithStopRule(rule),
	}, nil
}

// System loads the configured linear system: the built-in one when Small is
// set, otherwise A, b and the optional reference x from CSV.
func (c Config) System() (*dataset.System, error) {
	if c.Small {
		return dataset.Small(), nil
	}
	if c.MatrixPath == "" || c.RHSPath == "" {
		return nil, fmt.Errorf("%w: either --%s or both --%s and --%s are required", ErrInvalid, KeySmall, KeyMatrix, KeyRHS)
	}

	return dataset.LoadSystem(c.MatrixPath, c.RHSPath, c.SolutionPath)
}

// NewLogger builds a logrus logger writing to out with the configured level and format.
func (c Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return l, nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
