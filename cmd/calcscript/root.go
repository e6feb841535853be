package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose bool
}

// newRootCmd builds the command tree. Streams are injected so tests can drive
// the CLI without touching the process's stdio.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "calcscript",
		Short: "Evaluate arithmetic operations natively or through a script engine",
		Long: `calcscript applies one of inc, dec, add, sub, mult or div to arg1 and arg2.

The operation runs in Go, in a Risor, Starlark or yaegi script, or in a
govaluate expression table. Scripts are the built-in operation scripts unless
--script names another one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newEvalCmd(flags),
		newEnginesCmd(),
	)
	return rootCmd
}

// logHandler writes to the command's stderr, at debug level with --verbose.
func (f *globalFlags) logHandler(cmd *cobra.Command) slog.Handler {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
}
