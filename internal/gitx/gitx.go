package gitx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/runner"
)

// RepoInfo describes where a path sits inside a repository. Subpath is
// slash-separated and empty when the path is the repository root itself.
type RepoInfo struct {
	Root    string
	Subpath string
}

// Locate walks upward from path looking for a .git entry. A .git file counts
// too, so linked worktrees are detected. Returns (nil, nil) when no marker is
// found before the filesystem root; real I/O failures are reported, never
// folded into "not a repository".
func Locate(path string) (*RepoInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrRepositoryLookup, err)
	}

	dir := abs
	for {
		_, err := os.Stat(filepath.Join(dir, ".git"))
		if err == nil {
			rel, relErr := filepath.Rel(dir, abs)
			if relErr != nil {
				return nil, fmt.Errorf("%w: %v", model.ErrRepositoryLookup, relErr)
			}
			info := &RepoInfo{Root: dir}
			if rel != "." {
				info.Subpath = filepath.ToSlash(rel)
			}
			return info, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", model.ErrRepositoryLookup, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Client runs git subcommands.
type Client struct {
	bin string
	run runner.Runner
}

func NewClient(bin string, run runner.Runner) *Client {
	if bin == "" {
		bin = "git"
	}
	return &Client{bin: bin, run: run}
}

// Clone clones url into dir under parentDir, forwarding extraArgs to git
// verbatim. The engine does not interpret clone flags.
func (c *Client) Clone(ctx context.Context, url, parentDir, dir string, extraArgs []string) error {
	args := []string{"clone"}
	args = append(args, extraArgs...)
	args = append(args, url, dir)
	if _, err := c.run.Output(ctx, parentDir, c.bin, args...); err != nil {
		return fmt.Errorf("%w: %v", model.ErrCloneFailed, err)
	}
	return nil
}

// RepoNameFromURL extracts the repository directory name git would use for
// url: the last path segment with any .git suffix stripped.
func RepoNameFromURL(url string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	trimmed = strings.TrimRight(trimmed, "/")
	idx := strings.LastIndexAny(trimmed, "/:")
	name := trimmed
	if idx >= 0 {
		name = trimmed[idx+1:]
	}
	if name == "" {
		return "", fmt.Errorf("%w: no repository name in %q", model.ErrCloneFailed, url)
	}
	return name, nil
}
