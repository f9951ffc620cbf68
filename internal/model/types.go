package model

// Source tags where a list entry came from.
type Source string

const (
	SourceSession   Source = "session"
	SourceDirectory Source = "directory"
	// SourceBoth marks an entry backed by a live session and a directory
	// history record that resolve to the same canonical name.
	SourceBoth Source = "both"
)

// Session is one live multiplexer session. Names are unique among live
// sessions; at most one session is current.
type Session struct {
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
}

// DirEntry is one directory-history record. Score ordering is owned by the
// history service; it is only sorted on here.
type DirEntry struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// ListEntry is the merged listing record keyed by canonical name.
type ListEntry struct {
	Name      string  `json:"name"`
	Source    Source  `json:"source"`
	IsCurrent bool    `json:"is_current"`
	Path      string  `json:"path,omitempty"`
	Score     float64 `json:"score,omitempty"`
	Display   string  `json:"display,omitempty"`
}

// SessionOptions carries opaque multiplexer settings applied only when a
// session is created, never when attaching.
type SessionOptions struct {
	Layout string
}
