package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aledsdavies/add2vals/core/calc"
	"github.com/aledsdavies/add2vals/pkgs/errors"
)

const (
	introMessage      = "This tool takes 2 values and adds them together."
	firstPrompt       = "Enter first value: "
	secondPrompt      = "Enter second value: "
	emptyInputMessage = "You must enter a value."
	resultPrefix      = "The result is: "
)

// session drives one interactive addition: two prompts, one result line.
type session struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

func newSession(in io.Reader, out io.Writer, logger *slog.Logger) *session {
	return &session{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// run prints the transcript to s.out. An empty answer stops the session
// with an ErrEmptyInput error after its message has been printed.
func (s *session) run(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.out, introMessage); err != nil {
		return errors.NewOutputError(err)
	}

	first, err := s.prompt(ctx, firstPrompt)
	if err != nil {
		return err
	}
	second, err := s.prompt(ctx, secondPrompt)
	if err != nil {
		return err
	}

	a := calc.Coerce(first)
	b := calc.Coerce(second)
	s.logger.Debug("coerced operands", "first", a.Kind(), "second", b.Kind())

	result := calc.Add2(a, b)
	s.logger.Debug("add2", "result_kind", result.Kind())

	if _, err := fmt.Fprintf(s.out, "%s%s\n", resultPrefix, result); err != nil {
		return errors.NewOutputError(err)
	}
	return nil
}

func (s *session) prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", errors.NewOutputError(err)
	}

	line, err := readLine(s.in)
	if err != nil {
		return "", errors.NewInputError(prompt, err)
	}
	s.logger.Debug("read line", "prompt", strings.TrimSpace(prompt), "bytes", len(line))

	if line == "" {
		if _, err := fmt.Fprintln(s.out, emptyInputMessage); err != nil {
			return "", errors.NewOutputError(err)
		}
		return "", errors.NewEmptyInputError(prompt)
	}
	return line, nil
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// A final unterminated line is returned as is; end of input before any
// byte is io.ErrUnexpectedEOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
		return line, nil
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
