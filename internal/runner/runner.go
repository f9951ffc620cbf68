package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/zsesh/zsesh/internal/model"
)

// Runner executes external tools. Output is for query-style commands with
// captured streams; Interactive hands the terminal to the child, which is how
// the multiplexer takes over the screen on attach and create.
type Runner interface {
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	Interactive(dir, name string, args ...string) error
}

// ExitError reports a tool that ran but failed. It unwraps to
// model.ErrServiceFailed so callers can classify without string matching.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Cmd, msg)
}

func (e *ExitError) Unwrap() error { return model.ErrServiceFailed }

type OSRunner struct{}

func (OSRunner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), classify(name, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Interactive inherits all three standard streams so the child can take over
// the terminal. Its stderr goes to the user directly, not into the error.
func (OSRunner) Interactive(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return classify(name, err, "")
	}
	return nil
}

func classify(name string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: name, Code: exitErr.ExitCode(), Stderr: stderr}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", name, model.ErrServiceUnavailable)
	}
	return fmt.Errorf("%s: %w: %v", name, model.ErrServiceFailed, err)
}
