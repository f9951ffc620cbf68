package zellij

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/runner"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	outputCalls      []call
	interactiveCalls []call
	out              []byte
	err              error
}

func (f *fakeRunner) Output(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.outputCalls = append(f.outputCalls, call{dir: dir, name: name, args: args})
	return f.out, f.err
}

func (f *fakeRunner) Interactive(dir, name string, args ...string) error {
	f.interactiveCalls = append(f.interactiveCalls, call{dir: dir, name: name, args: args})
	return f.err
}

func TestListSessionsParsesNamesAndCurrent(t *testing.T) {
	run := &fakeRunner{out: []byte(
		"work [Created 2h ago]\n" +
			"proj_api [Created 5m ago] (current)\n" +
			"\n",
	)}
	c := NewClient("zellij", run)

	sessions, err := c.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, model.Session{Name: "work"}, sessions[0])
	assert.Equal(t, model.Session{Name: "proj_api", IsCurrent: true}, sessions[1])

	require.Len(t, run.outputCalls, 1)
	assert.Equal(t, []string{"list-sessions", "--no-formatting"}, run.outputCalls[0].args)
}

func TestListSessionsNoSessionsExitIsEmpty(t *testing.T) {
	run := &fakeRunner{err: &runner.ExitError{Cmd: "zellij", Code: 1, Stderr: "No active zellij sessions found."}}
	c := NewClient("zellij", run)

	sessions, err := c.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestListSessionsOtherFailuresPropagate(t *testing.T) {
	run := &fakeRunner{err: &runner.ExitError{Cmd: "zellij", Code: 2, Stderr: "broken config"}}
	c := NewClient("zellij", run)

	_, err := c.ListSessions(context.Background())
	assert.True(t, errors.Is(err, model.ErrServiceFailed))
}

func TestAttachIsInteractive(t *testing.T) {
	run := &fakeRunner{}
	c := NewClient("zellij", run)

	require.NoError(t, c.Attach("proj"))
	require.Len(t, run.interactiveCalls, 1)
	assert.Equal(t, []string{"attach", "proj"}, run.interactiveCalls[0].args)
}

func TestNewSessionRunsInDirWithLayout(t *testing.T) {
	run := &fakeRunner{}
	c := NewClient("zellij", run)

	require.NoError(t, c.NewSession("proj_api", "/home/u/proj/api", model.SessionOptions{Layout: "compact"}))
	require.Len(t, run.interactiveCalls, 1)
	assert.Equal(t, "/home/u/proj/api", run.interactiveCalls[0].dir)
	assert.Equal(t, []string{"--session", "proj_api", "--layout", "compact"}, run.interactiveCalls[0].args)
}

func TestNewSessionWithoutLayout(t *testing.T) {
	run := &fakeRunner{}
	c := NewClient("zellij", run)

	require.NoError(t, c.NewSession("proj", "/home/u/proj", model.SessionOptions{}))
	assert.Equal(t, []string{"--session", "proj"}, run.interactiveCalls[0].args)
}

func TestKill(t *testing.T) {
	run := &fakeRunner{}
	c := NewClient("zellij", run)

	require.NoError(t, c.Kill(context.Background(), "proj"))
	require.Len(t, run.outputCalls, 1)
	assert.Equal(t, []string{"kill-session", "proj"}, run.outputCalls[0].args)
}
