package model

import "errors"

// Engine error taxonomy. Adapters and services wrap these with %w so callers
// can classify with errors.Is regardless of which layer failed.
var (
	// ErrInvalidName means the naming policy produced an empty or unusable
	// session identifier.
	ErrInvalidName = errors.New("invalid session name")

	// ErrServiceUnavailable means an external tool (zellij, zoxide, git) is
	// not installed or not reachable.
	ErrServiceUnavailable = errors.New("external tool unavailable")

	// ErrServiceFailed means an external tool ran but reported failure.
	ErrServiceFailed = errors.New("external tool failed")

	// ErrTargetNotFound means connect resolution was exhausted: no session,
	// no directory, no history match.
	ErrTargetNotFound = errors.New("no matching session or directory")

	// ErrSessionCreation means the multiplexer refused to create a session.
	ErrSessionCreation = errors.New("session creation failed")

	// ErrCloneFailed means the clone operation did not complete; no session
	// state may exist for the destination.
	ErrCloneFailed = errors.New("clone failed")

	// ErrNoPreviousSession means the last-session history holds no usable
	// entry.
	ErrNoPreviousSession = errors.New("no previous session")

	// ErrRootUnknown means no root directory could be determined for the
	// current session.
	ErrRootUnknown = errors.New("session root unknown")

	// ErrRepositoryLookup means repository detection failed with a real I/O
	// error, which is distinct from "not a repository".
	ErrRepositoryLookup = errors.New("repository lookup failed")
)
