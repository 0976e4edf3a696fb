package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intro = "This tool takes 2 values and adds them together.\n"

// runCLI executes the command line against in-memory streams.
func runCLI(t *testing.T, ctx context.Context, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv(debugEnv, "")

	var out, errOut bytes.Buffer
	code = run(ctx, args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSessionTranscripts(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		result string
	}{
		{"integers", "5\n7\n", "12"},
		{"floats", "2.5\n1.5\n", "4.0"},
		{"texts", "hello\nworld\n", "helloworld"},
		{"text then integer", "hello\n3\n", "hello3"},
		{"integer then text", "3\nhello\n", "3hello"},
		{"integer and float", "1\n0.5\n", "1.5"},
		{"crlf line endings", "5\r\n7\r\n", "12"},
		{"final line without newline", "5\n7", "12"},
		{"padded numbers", " 5 \n7\n", "12"},
		{"padded text keeps spaces", " a\nb \n", " ab "},
		{"huge integers", "99999999999999999999\n1\n", "100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, context.Background(), tt.input)

			assert.Equal(t, ExitSuccess, code)
			assert.Equal(t, intro+"Enter first value: Enter second value: The result is: "+tt.result+"\n", stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestSessionEmptyFirstValue(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "\n7\n")

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, intro+"Enter first value: You must enter a value.\n", stdout)
	assert.NotContains(t, stdout, "Enter second value")
	assert.Empty(t, stderr)
}

func TestSessionEmptySecondValue(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "5\n\n")

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, intro+"Enter first value: Enter second value: You must enter a value.\n", stdout)
	assert.NotContains(t, stdout, "The result is")
	assert.Empty(t, stderr)
}

func TestSessionEndOfInput(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "5\n")

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, intro+"Enter first value: Enter second value: ", stdout)
	assert.Contains(t, stderr, "Error: failed to read input")
	assert.Contains(t, stderr, "unexpected EOF")
}

func TestSessionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, stdout, stderr := runCLI(t, ctx, "5\n7\n")

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, intro, stdout)
	assert.Contains(t, stderr, "context canceled")
}

func TestRootRejectsArguments(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "5\n7\n", "extra")

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Error: unknown command "extra"`)
}

func TestDebugFlagLogsToStderr(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "5\nhi\n", "--debug")

	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, intro+"Enter first value: Enter second value: The result is: 5hi\n", stdout)
	assert.Contains(t, stderr, "coerced operands")
	assert.Contains(t, stderr, "first=integer")
	assert.Contains(t, stderr, "second=text")
	assert.NotContains(t, stderr, "level=")
}

func TestDebugEnvironmentVariable(t *testing.T) {
	t.Setenv(debugEnv, "1")

	var out, errOut bytes.Buffer
	code := run(context.Background(), nil, strings.NewReader("1\n2\n"), &out, &errOut)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut.String(), "result_kind=integer")
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("first\r\n\nlast"))

	line, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = readLine(r)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
