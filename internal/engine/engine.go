// Package engine resolves user targets to multiplexer sessions and merges
// session and directory-history listings under one canonical naming scheme.
package engine

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zsesh/zsesh/internal/gitx"
	"github.com/zsesh/zsesh/internal/model"
)

// Multiplexer is the session host boundary. Attach and NewSession hand the
// terminal to the child and block until the user leaves the session.
type Multiplexer interface {
	ListSessions(ctx context.Context) ([]model.Session, error)
	Attach(name string) error
	NewSession(name, dir string, opts model.SessionOptions) error
	Kill(ctx context.Context, name string) error
}

// DirIndex is the directory-history boundary.
type DirIndex interface {
	List(ctx context.Context) ([]model.DirEntry, error)
	Query(ctx context.Context, text string) (*model.DirEntry, error)
	Add(ctx context.Context, path string) error
}

// GitCloner clones a remote URL into dir under parentDir.
type GitCloner interface {
	Clone(ctx context.Context, url, parentDir, dir string, extraArgs []string) error
}

// StateStore is the persisted cross-invocation state.
type StateStore interface {
	PushLast(name string) error
	PeekLast(excluding string) (string, bool)
	SetRoot(name, path string) error
	Root(name string) (string, bool)
	DeleteRoot(name string) error
}

type Engine struct {
	mux    Multiplexer
	dirs   DirIndex
	git    GitCloner
	state  StateStore
	locate func(path string) (*gitx.RepoInfo, error)
	getwd  func() (string, error)
	home   string
	log    zerolog.Logger
}

func New(mux Multiplexer, dirs DirIndex, git GitCloner, st StateStore, log zerolog.Logger) *Engine {
	home, _ := os.UserHomeDir()
	return &Engine{
		mux:    mux,
		dirs:   dirs,
		git:    git,
		state:  st,
		locate: gitx.Locate,
		getwd:  os.Getwd,
		home:   home,
		log:    log,
	}
}

// displayPath shortens the home directory prefix to ~ for listings.
func (e *Engine) displayPath(path string) string {
	if e.home == "" {
		return path
	}
	if path == e.home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, e.home+"/"); ok {
		return "~/" + rest
	}
	return path
}

func (e *Engine) currentSession(sessions []model.Session) *model.Session {
	for i := range sessions {
		if sessions[i].IsCurrent {
			return &sessions[i]
		}
	}
	return nil
}
