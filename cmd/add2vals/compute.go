package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/add2vals/core/calc"
	"github.com/aledsdavies/add2vals/pkgs/errors"
)

// newAddCmd runs Add2 on two arguments without prompting.
func newAddCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two values, joining them as text if either is not a number",
		Example: `  add2vals add 5 7            # 12
  add2vals add hello 3        # hello3
  add2vals add --format json 2.5 1.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.debugEnabled())

			a := calc.Coerce(args[0])
			b := calc.Coerce(args[1])
			logger.Debug("coerced operands", "first", a.Kind(), "second", b.Kind())

			return writeResult(cmd.OutOrStdout(), format, calc.Add2(a, b))
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, fmt.Sprintf("Output format: %v", supportedFormats))
	return cmd
}

// newSubtractCmd runs Subtract2 on two numeric arguments.
func newSubtractCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "subtract <a> <b>",
		Short: "Subtract the second number from the first",
		Example: `  add2vals subtract 10 3      # 7
  add2vals subtract -- -1 2.5 # -3.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.debugEnabled())

			a, err := numericOperand("subtract", args[0])
			if err != nil {
				return err
			}
			b, err := numericOperand("subtract", args[1])
			if err != nil {
				return err
			}
			logger.Debug("coerced operands", "first", a.Kind(), "second", b.Kind())

			return writeResult(cmd.OutOrStdout(), format, calc.Subtract2(a, b).Value())
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, fmt.Sprintf("Output format: %v", supportedFormats))
	return cmd
}

func numericOperand(operation, arg string) (calc.Number, error) {
	n, ok := calc.Coerce(arg).Number()
	if !ok {
		return calc.Number{}, errors.NewNonNumericOperandError(operation, arg)
	}
	return n, nil
}
