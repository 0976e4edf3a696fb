package main

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/aledsdavies/add2vals/pkgs/errors"
)

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var calcErr *errors.CalcError
	if stderrors.As(err, &calcErr) {
		formatCalcError(w, calcErr, useColor)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
}

// formatCalcError prints the message, the cause and a hint on separate lines
func formatCalcError(w io.Writer, err *errors.CalcError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Message)

	if err.Cause != nil {
		_, _ = fmt.Fprintf(w, "  %v\n", err.Cause)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}
