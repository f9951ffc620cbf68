// Package namer derives canonical session names from directory and
// repository context. The same inputs always produce the same name, so
// sessions, history entries and persisted state all agree on identity.
package namer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zsesh/zsesh/internal/gitx"
	"github.com/zsesh/zsesh/internal/model"
)

// maxNameLen bounds names to something every multiplexer accepts.
const maxNameLen = 64

// Resolve computes the canonical session name for path. Inside a repository
// the name is the repo root leaf, with the relative subpath appended for
// subdirectories ("proj", "proj_api"). Outside one it is the path's leaf.
func Resolve(path string, repo *gitx.RepoInfo) (string, error) {
	var raw string
	switch {
	case repo != nil && repo.Subpath != "":
		raw = filepath.Base(repo.Root) + "_" + strings.ReplaceAll(repo.Subpath, "/", "_")
	case repo != nil:
		raw = filepath.Base(repo.Root)
	default:
		raw = filepath.Base(filepath.Clean(path))
	}
	return Sanitize(raw)
}

// Sanitize replaces anything outside [A-Za-z0-9_-] with underscores and
// bounds the length. Names that reduce to nothing are rejected.
func Sanitize(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if len(out) > maxNameLen {
		out = out[:maxNameLen]
	}
	if strings.Trim(out, "_") == "" {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidName, name)
	}
	return out, nil
}

// Disambiguate appends a short content hash of path to name. Used when two
// unrelated directories would otherwise collide on the same canonical name.
func Disambiguate(name, path string) string {
	sum := sha256.Sum256([]byte(path))
	suffix := "-" + hex.EncodeToString(sum[:3])
	if len(name)+len(suffix) > maxNameLen {
		name = name[:maxNameLen-len(suffix)]
	}
	return name + suffix
}
