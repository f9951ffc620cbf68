// Package state persists the cross-invocation engine state: the stack of
// recently connected sessions and the session-name to root-directory table.
// Every command invocation is a fresh process, so nothing is cached in
// memory; each operation reads the file, mutates, and atomically replaces it.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

type Store struct {
	path string
	cap  int
}

// fileState is the on-disk layout. Unknown fields are ignored on read so
// newer versions can extend it without breaking older binaries.
type fileState struct {
	LastSessions []string          `json:"last_sessions"`
	Roots        map[string]string `json:"roots"`
}

func NewStore(path string, historyCap int) *Store {
	if historyCap <= 0 {
		historyCap = 50
	}
	return &Store{path: path, cap: historyCap}
}

// PushLast records name as the most recent session. An existing occurrence
// moves to the top instead of duplicating; the oldest entry is evicted past
// the cap.
func (s *Store) PushLast(name string) error {
	return s.mutate(func(st *fileState) {
		kept := st.LastSessions[:0]
		for _, n := range st.LastSessions {
			if n != name {
				kept = append(kept, n)
			}
		}
		st.LastSessions = append(kept, name)
		if len(st.LastSessions) > s.cap {
			st.LastSessions = st.LastSessions[len(st.LastSessions)-s.cap:]
		}
	})
}

// PeekLast returns the most recent session that is not excluding. The stack
// is most-recent-last on disk.
func (s *Store) PeekLast(excluding string) (string, bool) {
	st := s.load()
	for i := len(st.LastSessions) - 1; i >= 0; i-- {
		if st.LastSessions[i] != excluding {
			return st.LastSessions[i], true
		}
	}
	return "", false
}

// LastSessions returns the stack oldest-first.
func (s *Store) LastSessions() []string {
	return s.load().LastSessions
}

// SetRoot records the directory a session was created from.
func (s *Store) SetRoot(name, path string) error {
	return s.mutate(func(st *fileState) {
		if st.Roots == nil {
			st.Roots = map[string]string{}
		}
		st.Roots[name] = path
	})
}

// Root returns the recorded origin directory for a session, if any.
func (s *Store) Root(name string) (string, bool) {
	path, ok := s.load().Roots[name]
	return path, ok
}

// DeleteRoot drops the mapping for a killed session.
func (s *Store) DeleteRoot(name string) error {
	return s.mutate(func(st *fileState) {
		delete(st.Roots, name)
	})
}

// load reads the state file. A missing, truncated, or otherwise unreadable
// file is an empty store: losing history is recoverable and must never block
// a command.
func (s *Store) load() fileState {
	var st fileState
	data, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return fileState{}
	}
	return st
}

// mutate serializes writers with a lock file, then replaces the state file
// via temp-write-and-rename so a crash mid-write leaves the prior state
// intact.
func (s *Store) mutate(fn func(*fileState)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	st := s.load()
	fn(&st)

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

func (s *Store) lock() (func(), error) {
	f, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open state lock: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("lock state: %w", err)
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
