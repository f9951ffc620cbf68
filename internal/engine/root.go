package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/zsesh/zsesh/internal/model"
)

// ResolveRoot maps the current session back to its originating directory:
// the root recorded at creation time, else the enclosing repository of the
// working directory. "Unknown" is reported, never silently answered with
// the working directory.
func (e *Engine) ResolveRoot(ctx context.Context) (string, error) {
	sessions, err := e.mux.ListSessions(ctx)
	if err != nil {
		return "", err
	}
	current := e.currentSession(sessions)
	if current == nil {
		return "", fmt.Errorf("%w: not inside a session", model.ErrRootUnknown)
	}

	if root, ok := e.state.Root(current.Name); ok {
		return root, nil
	}

	wd, err := e.getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrRootUnknown, err)
	}
	repo, err := e.locate(wd)
	if err != nil {
		return "", err
	}
	if repo == nil {
		return "", fmt.Errorf("%w: no recorded root and no repository around %s", model.ErrRootUnknown, wd)
	}
	return repo.Root, nil
}

// Preview describes what a target would resolve to without connecting.
type Preview struct {
	// Session is set when target names a live session.
	Session *model.Session
	// Path is the directory backing the target, when one is known.
	Path string
	// ViaQuery marks a path found through the history index rather than
	// given directly.
	ViaQuery bool
}

// PreviewTarget resolves target the same way Connect would, read-only.
func (e *Engine) PreviewTarget(ctx context.Context, target string) (Preview, error) {
	sessions, err := e.mux.ListSessions(ctx)
	if err != nil {
		return Preview{}, err
	}
	for i := range sessions {
		if sessions[i].Name == target {
			p := Preview{Session: &sessions[i]}
			if root, ok := e.state.Root(target); ok {
				p.Path = root
			}
			return p, nil
		}
	}

	if path, ok := e.resolveDirTarget(target); ok {
		return Preview{Path: path}, nil
	}

	match, err := e.dirs.Query(ctx, target)
	if err != nil {
		return Preview{}, err
	}
	if match == nil {
		return Preview{}, fmt.Errorf("%w: %q", model.ErrTargetNotFound, target)
	}
	if _, err := os.Stat(match.Path); err != nil {
		return Preview{}, fmt.Errorf("%w: %q matched %s which no longer exists", model.ErrTargetNotFound, target, match.Path)
	}
	return Preview{Path: match.Path, ViaQuery: true}, nil
}
