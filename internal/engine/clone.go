package engine

import (
	"context"
	"path/filepath"

	"github.com/zsesh/zsesh/internal/gitx"
	"github.com/zsesh/zsesh/internal/model"
)

// CloneAndConnect clones url and connects to the resulting directory. The
// clone must complete before any session or persisted state exists for the
// destination; a failed clone leaves nothing behind.
//
// parentDir defaults to the working directory. nameOverride replaces the
// derived session name. extraArgs are forwarded to the clone verbatim.
func (e *Engine) CloneAndConnect(ctx context.Context, url, parentDir, nameOverride string, extraArgs []string, opts model.SessionOptions) (model.Session, error) {
	repoName, err := gitx.RepoNameFromURL(url)
	if err != nil {
		return model.Session{}, err
	}

	if parentDir == "" {
		parentDir, err = e.getwd()
		if err != nil {
			return model.Session{}, err
		}
	}

	e.log.Debug().Str("url", url).Str("dest", filepath.Join(parentDir, repoName)).Msg("cloning repository")
	if err := e.git.Clone(ctx, url, parentDir, repoName, extraArgs); err != nil {
		return model.Session{}, err
	}

	sessions, err := e.mux.ListSessions(ctx)
	if err != nil {
		return model.Session{}, err
	}
	return e.connectPath(ctx, filepath.Join(parentDir, repoName), nameOverride, opts, sessions)
}
