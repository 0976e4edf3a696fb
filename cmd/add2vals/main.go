package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/add2vals/pkgs/errors"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// debugEnv enables debug logging when set to any non-empty value.
const debugEnv = "ADD2VALS_DEBUG"

type options struct {
	debug   bool
	noColor bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	// The empty-input message is part of the session transcript on stdout.
	if !errors.IsErrorType(err, errors.ErrEmptyInput) {
		FormatError(stderr, err, ShouldUseColor(opts.noColor, stderr))
	}
	return ExitFailure
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "add2vals",
		Short: "Prompt for 2 values and add them together",
		Long: `add2vals prompts for two values and adds them together.

Values that parse as integers or floats are added numerically. If either
value is not a number, both are joined as text.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd.InOrStdin(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), opts.debugEnabled()))
			return s.run(cmd.Context())
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug output on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(newAddCmd(opts), newSubtractCmd(opts))
	return rootCmd
}

func (o *options) debugEnabled() bool {
	return o.debug || os.Getenv(debugEnv) != ""
}
