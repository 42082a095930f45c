package runner

import (
	"context"
	"fmt"
	"strings"
)

// Result is the outcome of a command that was started
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status zero
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a program synchronously and captures its output. A command
// that starts and exits non-zero is not an error; only failing to start it is.
type Runner interface {
	Run(ctx context.Context, program string, args []string) (Result, error)
}

// SpawnError is returned when the program could not be started at all
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// CommandLine renders a program and its arguments for display
func CommandLine(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, program)
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'$") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
