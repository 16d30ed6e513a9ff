package installer

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes a command and waits for it to exit.
type Runner interface {
	// Run starts argv[0] with the remaining arguments. A process that starts
	// and exits non-zero is reported through exitCode with a nil error; err is
	// reserved for failures to start or wait on the process.
	Run(ctx context.Context, argv []string) (exitCode int, err error)
}

// ExecRunner runs commands as child processes attached to the given streams.
type ExecRunner struct {
	// Stdin, Stdout and Stderr default to the process's own streams, so
	// sudo and package-manager prompts reach the user.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes argv directly, without a shell.
func (r *ExecRunner) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return -1, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
