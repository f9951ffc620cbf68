package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/namer"
)

// Connect resolves target to exactly one session and enters it. Resolution
// order, first match wins: live session name, directory path, directory
// history query. Missing sessions are created rooted at the resolved
// directory.
func (e *Engine) Connect(ctx context.Context, target string, opts model.SessionOptions) (model.Session, error) {
	sessions, err := e.mux.ListSessions(ctx)
	if err != nil {
		return model.Session{}, err
	}

	for _, s := range sessions {
		if s.Name == target {
			return e.attach(ctx, s.Name)
		}
	}

	if path, ok := e.resolveDirTarget(target); ok {
		return e.connectPath(ctx, path, "", opts, sessions)
	}

	match, err := e.dirs.Query(ctx, target)
	if err != nil {
		return model.Session{}, err
	}
	if match == nil {
		return model.Session{}, fmt.Errorf("%w: %q", model.ErrTargetNotFound, target)
	}
	return e.connectPath(ctx, match.Path, "", opts, sessions)
}

// Last resolves the previously connected session and enters it. A stale
// entry whose session has exited is revived from its recorded root.
func (e *Engine) Last(ctx context.Context, opts model.SessionOptions) (model.Session, error) {
	sessions, err := e.mux.ListSessions(ctx)
	if err != nil {
		return model.Session{}, err
	}
	var currentName string
	if current := e.currentSession(sessions); current != nil {
		currentName = current.Name
	}

	name, ok := e.state.PeekLast(currentName)
	if !ok {
		return model.Session{}, model.ErrNoPreviousSession
	}

	for _, s := range sessions {
		if s.Name == name {
			return e.attach(ctx, name)
		}
	}
	if root, ok := e.state.Root(name); ok {
		return e.connectPath(ctx, root, name, opts, sessions)
	}
	return model.Session{}, fmt.Errorf("%w: %q is gone and has no recorded root", model.ErrNoPreviousSession, name)
}

// Kill removes a session and its recorded root mapping.
func (e *Engine) Kill(ctx context.Context, name string) error {
	if err := e.mux.Kill(ctx, name); err != nil {
		return err
	}
	return e.state.DeleteRoot(name)
}

// attach records usage and hands the terminal over. State is written before
// the blocking attach so `last` and `root` invoked from inside the session
// observe it.
func (e *Engine) attach(ctx context.Context, name string) (model.Session, error) {
	if err := e.recordUsage(ctx, name, ""); err != nil {
		return model.Session{}, err
	}
	if err := e.mux.Attach(name); err != nil {
		return model.Session{}, err
	}
	return model.Session{Name: name}, nil
}

// connectPath attaches to the session for path, creating it when absent.
// nameOverride forces the session name instead of deriving it from the path.
func (e *Engine) connectPath(ctx context.Context, path, nameOverride string, opts model.SessionOptions, sessions []model.Session) (model.Session, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", model.ErrTargetNotFound, err)
	}

	var name string
	if nameOverride != "" {
		name, err = namer.Sanitize(nameOverride)
	} else {
		name, err = e.canonicalNameForPath(abs)
	}
	if err != nil {
		return model.Session{}, err
	}

	for _, s := range sessions {
		if s.Name == name {
			if err := e.recordUsage(ctx, name, abs); err != nil {
				return model.Session{}, err
			}
			if err := e.mux.Attach(name); err != nil {
				return model.Session{}, err
			}
			return model.Session{Name: name}, nil
		}
	}

	if err := e.state.SetRoot(name, abs); err != nil {
		return model.Session{}, err
	}
	if err := e.recordUsage(ctx, name, abs); err != nil {
		return model.Session{}, err
	}
	e.log.Debug().Str("session", name).Str("dir", abs).Msg("creating session")
	if err := e.mux.NewSession(name, abs, opts); err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", model.ErrSessionCreation, err)
	}
	return model.Session{Name: name}, nil
}

// recordUsage pushes the last-session stack and tells the directory index a
// path was used. It runs before the blocking attach/create call so `last`
// and `root` invoked from inside the new session already observe it. For
// bare session names with no recorded root there is no path to report, so
// only the stack is updated.
func (e *Engine) recordUsage(ctx context.Context, name, path string) error {
	if err := e.state.PushLast(name); err != nil {
		return err
	}
	if path == "" {
		if root, ok := e.state.Root(name); ok {
			path = root
		}
	}
	if path == "" {
		return nil
	}
	return e.dirs.Add(ctx, path)
}

// resolveDirTarget reports whether target names an existing directory.
// Anything that is not an existing directory falls through to the history
// query, including path-looking strings for projects that moved.
func (e *Engine) resolveDirTarget(target string) (string, bool) {
	path := target
	if path == "~" || strings.HasPrefix(path, "~/") {
		if e.home == "" {
			return "", false
		}
		path = filepath.Join(e.home, strings.TrimPrefix(path, "~"))
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return path, true
}
