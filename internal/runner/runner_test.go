package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsesh/zsesh/internal/model"
)

func TestOutputCapturesStdout(t *testing.T) {
	out, err := OSRunner{}.Output(context.Background(), "", "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestOutputRunsInDir(t *testing.T) {
	dir := t.TempDir()
	out, err := OSRunner{}.Output(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Contains(t, string(out), dir)
}

func TestOutputNonZeroExitIsServiceFailed(t *testing.T) {
	_, err := OSRunner{}.Output(context.Background(), "", "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrServiceFailed))

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, exitErr.Stderr, "oops")
}

func TestOutputMissingBinaryIsServiceUnavailable(t *testing.T) {
	_, err := OSRunner{}.Output(context.Background(), "", "definitely-not-a-binary-zsesh")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrServiceUnavailable))
}

func TestExitErrorMessageUsesStderr(t *testing.T) {
	e := &ExitError{Cmd: "zellij", Code: 1, Stderr: "no session\n"}
	assert.Equal(t, "zellij: no session", e.Error())

	e = &ExitError{Cmd: "zellij", Code: 2}
	assert.Equal(t, "zellij: exit status 2", e.Error())
}
