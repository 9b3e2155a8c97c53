// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/linsolve/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configFile string
}

// NewRootCommand assembles the linsolve command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	d := config.Default()

	cmd := &cobra.Command{
		Use:           "linsolve <command> [flags]",
		Short:         "Solve dense linear systems and compare direct and iterative methods",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().String(config.KeyLogLevel, d.LogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")
	cmd.PersistentFlags().String(config.KeyLogFormat, d.LogFormat, "Log format (text or json)")

	cmd.AddCommand(
		newSolveCommand(opts),
		newInspectCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// addSystemFlags registers the flags that select a linear system.
func addSystemFlags(fs *pflag.FlagSet) {
	fs.Bool(config.KeySmall, false, "Use the built-in 5x5 system with solution [8 6 7 5 3]")
	fs.String(config.KeyMatrix, "", "CSV file holding the square coefficient matrix A")
	fs.String(config.KeyRHS, "", "CSV file holding the right-hand side b (one column)")
	fs.String(config.KeySolution, "", "CSV file holding the reference solution x (optional)")
}

// resolve merges defaults, config file, environment and the command's flags,
// then builds the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	v, err := config.NewViper(o.configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, log, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linsolve version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "linsolve "+version+"\n")
			return err
		},
	}
}
