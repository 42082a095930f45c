package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ExecRunner runs programs on the host with os/exec
type ExecRunner struct {
	logger *zap.Logger
}

func NewExecRunner(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, program string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if cerr.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		r.logger.Debug("Command exited non-zero",
			zap.String("program", program),
			zap.Int("exitCode", result.ExitCode))
		return result, nil
	}

	return result, cerr.WithHint(&SpawnError{Program: program, Err: err},
		"make sure the container tool is installed and on PATH, or set --tool")
}
