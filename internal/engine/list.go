package engine

import (
	"context"
	"errors"
	"sort"

	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/namer"
)

// ListFilter restricts the listing by category. Filters never drop the
// current session.
type ListFilter struct {
	SessionsOnly bool
	DirsOnly     bool
}

// List fetches both sources concurrently and merges them. Each invocation is
// short-lived, so the two reads race only against the clock, never each
// other; merging stays deterministic because aggregation orders the result.
func (e *Engine) List(ctx context.Context, filter ListFilter) ([]model.ListEntry, error) {
	type sessionsResult struct {
		sessions []model.Session
		err      error
	}
	type dirsResult struct {
		entries []model.DirEntry
		err     error
	}

	sessCh := make(chan sessionsResult, 1)
	dirCh := make(chan dirsResult, 1)
	go func() {
		s, err := e.mux.ListSessions(ctx)
		sessCh <- sessionsResult{sessions: s, err: err}
	}()
	go func() {
		d, err := e.dirs.List(ctx)
		dirCh <- dirsResult{entries: d, err: err}
	}()

	sessRes := <-sessCh
	dirRes := <-dirCh
	if sessRes.err != nil {
		return nil, sessRes.err
	}
	if dirRes.err != nil {
		return nil, dirRes.err
	}

	return e.Aggregate(sessRes.sessions, dirRes.entries, filter)
}

// Aggregate merges sessions and directory entries into one deduplicated
// listing keyed by canonical name. A session always wins the merge; a
// directory record sharing its name becomes part of a single `both` entry
// unless the session's recorded root shows it is an unrelated project, in
// which case the directory entry gets a deterministic hash suffix instead of
// being silently folded in.
func (e *Engine) Aggregate(sessions []model.Session, dirs []model.DirEntry, filter ListFilter) ([]model.ListEntry, error) {
	byName := make(map[string]*model.ListEntry)
	order := make([]string, 0, len(sessions)+len(dirs))

	for _, s := range sessions {
		if _, seen := byName[s.Name]; seen {
			continue
		}
		entry := &model.ListEntry{
			Name:      s.Name,
			Source:    model.SourceSession,
			IsCurrent: s.IsCurrent,
			Display:   s.Name,
		}
		if root, ok := e.state.Root(s.Name); ok {
			entry.Path = root
		}
		byName[s.Name] = entry
		order = append(order, s.Name)
	}

	// Highest-scored directory wins a name among directory-only entries, so
	// sort before merging.
	sorted := append([]model.DirEntry(nil), dirs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	for _, d := range sorted {
		name, err := e.canonicalNameForPath(d.Path)
		if err != nil {
			if errors.Is(err, model.ErrInvalidName) {
				// A history entry that cannot name a session (e.g. "/")
				// cannot be connected to either; leave it out.
				e.log.Debug().Str("path", d.Path).Msg("skipping unnameable directory entry")
				continue
			}
			return nil, err
		}

		existing, ok := byName[name]
		if ok && existing.Source != model.SourceDirectory {
			if root, hasRoot := e.state.Root(name); hasRoot && root != d.Path {
				name = namer.Disambiguate(name, d.Path)
				if _, taken := byName[name]; taken {
					continue
				}
			} else {
				existing.Source = model.SourceBoth
				existing.Score = d.Score
				if existing.Path == "" {
					existing.Path = d.Path
				}
				continue
			}
		} else if ok {
			// Two directories collapsing to one name: first (higher score)
			// entry stands.
			continue
		}

		byName[name] = &model.ListEntry{
			Name:    name,
			Source:  model.SourceDirectory,
			Path:    d.Path,
			Score:   d.Score,
			Display: e.displayPath(d.Path),
		}
		order = append(order, name)
	}

	out := make([]model.ListEntry, 0, len(order))
	for _, name := range order {
		entry := byName[name]
		if !entry.IsCurrent {
			if filter.SessionsOnly && entry.Source == model.SourceDirectory {
				continue
			}
			if filter.DirsOnly && entry.Source == model.SourceSession {
				continue
			}
		}
		out = append(out, *entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsCurrent != b.IsCurrent {
			return a.IsCurrent
		}
		ra, rb := sourceRank(a.Source), sourceRank(b.Source)
		if ra != rb {
			return ra < rb
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Name < b.Name
	})
	return out, nil
}

// sourceRank orders session-backed entries ahead of directory-only ones.
func sourceRank(s model.Source) int {
	if s == model.SourceDirectory {
		return 1
	}
	return 0
}

func (e *Engine) canonicalNameForPath(path string) (string, error) {
	repo, err := e.locate(path)
	if err != nil {
		return "", err
	}
	return namer.Resolve(path, repo)
}
