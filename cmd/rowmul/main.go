package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ScriptRock/rowmul"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

type options struct {
	verify bool
	debug  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "rowmul",
		Short:         "Multiply two fixed 3x3 matrices with one goroutine per row",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			return run(cmd, opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.verify, "verify", false,
		"Check the concurrent result against a sequential multiply before printing")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Log row task events to stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rowmul",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rowmul version %s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func run(cmd *cobra.Command, opts options) error {
	a, b := rowmul.Inputs()
	c := rowmul.Multiply(a, b)
	slog.Debug("all row tasks joined", slog.Int("rows", rowmul.Size))

	if opts.verify {
		if err := rowmul.Verify(a, b, c); err != nil {
			return err
		}
		slog.Debug("result verified against sequential multiply")
	}

	return rowmul.Fprint(cmd.OutOrStdout(), c)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
