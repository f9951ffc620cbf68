// Package zoxide adapts the zoxide command line as the directory-history
// backend. Scores are opaque here beyond descending sort order.
package zoxide

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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
		bin = "zoxide"
	}
	return &Client{bin: bin, run: run}
}

// List returns every known directory with its score, highest first.
func (c *Client) List(ctx context.Context) ([]model.DirEntry, error) {
	out, err := c.run.Output(ctx, "", c.bin, "query", "--list", "--score")
	if err != nil {
		return nil, err
	}
	return parseEntries(string(out))
}

// Query returns the best match for text, or nil when nothing matches. zoxide
// reports "no match" through a non-zero exit, which is not a failure here.
func (c *Client) Query(ctx context.Context, text string) (*model.DirEntry, error) {
	out, err := c.run.Output(ctx, "", c.bin, "query", "--score", text)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) && isNoMatch(exitErr.Stderr) {
			return nil, nil
		}
		return nil, err
	}
	entries, err := parseEntries(string(out))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Add records a visit so future scoring reflects the usage.
func (c *Client) Add(ctx context.Context, path string) error {
	_, err := c.run.Output(ctx, "", c.bin, "add", path)
	return err
}

func isNoMatch(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "no match found")
}

// parseEntries reads "score path" lines, e.g. "  112.5 /home/u/proj".
func parseEntries(out string) ([]model.DirEntry, error) {
	var entries []model.DirEntry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scoreStr, path, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: unexpected zoxide output %q", model.ErrServiceFailed, line)
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad zoxide score in %q", model.ErrServiceFailed, line)
		}
		entries = append(entries, model.DirEntry{Path: strings.TrimSpace(path), Score: score})
	}
	return entries, nil
}
