// Package zellij adapts the zellij command line as the multiplexer backend.
package zellij

import (
	"context"
	"errors"
	"strings"

	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/runner"
)

type Client struct {
	bin string
	run runner.Runner
}

func NewClient(bin string, run runner.Runner) *Client {
	if bin == "" {
		bin = "zellij"
	}
	return &Client{bin: bin, run: run}
}

// ListSessions returns the live sessions. zellij exits non-zero when no
// sessions exist at all; that case is an empty list, not a failure.
func (c *Client) ListSessions(ctx context.Context) ([]model.Session, error) {
	out, err := c.run.Output(ctx, "", c.bin, "list-sessions", "--no-formatting")
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) && isNoSessions(exitErr.Stderr) {
			return nil, nil
		}
		return nil, err
	}
	return parseSessionList(string(out)), nil
}

// Attach hands the terminal to an existing session.
func (c *Client) Attach(name string) error {
	return c.run.Interactive("", c.bin, "attach", name)
}

// NewSession creates and enters a session rooted at dir. Options apply only
// here; attaching to an existing session never re-applies them.
func (c *Client) NewSession(name, dir string, opts model.SessionOptions) error {
	args := []string{"--session", name}
	if opts.Layout != "" {
		args = append(args, "--layout", opts.Layout)
	}
	return c.run.Interactive(dir, c.bin, args...)
}

func (c *Client) Kill(ctx context.Context, name string) error {
	_, err := c.run.Output(ctx, "", c.bin, "kill-session", name)
	return err
}

func isNoSessions(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "no active zellij sessions")
}

// parseSessionList reads "name [created ...] (current)" lines. The name is
// the first whitespace-separated token.
func parseSessionList(out string) []model.Session {
	var sessions []model.Session
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, _, _ := strings.Cut(line, " ")
		sessions = append(sessions, model.Session{
			Name:      name,
			IsCurrent: strings.Contains(line, "(current)"),
		})
	}
	return sessions
}
