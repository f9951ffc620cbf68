package engine

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/state"
)

type createCall struct {
	name string
	dir  string
	opts model.SessionOptions
}

type fakeMux struct {
	sessions  []model.Session
	attached  []string
	created   []createCall
	killed    []string
	listErr   error
	attachErr error
	newErr    error
	killErr   error
}

func (f *fakeMux) ListSessions(context.Context) ([]model.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Session(nil), f.sessions...), nil
}

func (f *fakeMux) Attach(name string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attached = append(f.attached, name)
	return nil
}

func (f *fakeMux) NewSession(name, dir string, opts model.SessionOptions) error {
	if f.newErr != nil {
		return f.newErr
	}
	f.created = append(f.created, createCall{name: name, dir: dir, opts: opts})
	f.sessions = append(f.sessions, model.Session{Name: name})
	return nil
}

func (f *fakeMux) Kill(_ context.Context, name string) error {
	if f.killErr != nil {
		return f.killErr
	}
	f.killed = append(f.killed, name)
	return nil
}

type fakeDirs struct {
	entries  []model.DirEntry
	added    []string
	listErr  error
	queryErr error
	addErr   error
}

func (f *fakeDirs) List(context.Context) ([]model.DirEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.DirEntry(nil), f.entries...), nil
}

// Query mimics the history service: best-scored entry whose path contains
// the text.
func (f *fakeDirs) Query(_ context.Context, text string) (*model.DirEntry, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var best *model.DirEntry
	for i := range f.entries {
		if !strings.Contains(f.entries[i].Path, text) {
			continue
		}
		if best == nil || f.entries[i].Score > best.Score {
			best = &f.entries[i]
		}
	}
	return best, nil
}

func (f *fakeDirs) Add(_ context.Context, path string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, path)
	return nil
}

type cloneCall struct {
	url, parent, dir string
	extra            []string
}

type fakeGit struct {
	calls   []cloneCall
	err     error
	onClone func(parent, dir string)
}

func (f *fakeGit) Clone(_ context.Context, url, parentDir, dir string, extraArgs []string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, cloneCall{url: url, parent: parentDir, dir: dir, extra: extraArgs})
	if f.onClone != nil {
		f.onClone(parentDir, dir)
	}
	return nil
}

type harness struct {
	engine *Engine
	mux    *fakeMux
	dirs   *fakeDirs
	git    *fakeGit
	state  *state.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mux := &fakeMux{}
	dirs := &fakeDirs{}
	git := &fakeGit{}
	st := state.NewStore(filepath.Join(t.TempDir(), "state.json"), 50)
	e := New(mux, dirs, git, st, zerolog.Nop())
	return &harness{engine: e, mux: mux, dirs: dirs, git: git, state: st}
}
