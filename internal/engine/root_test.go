package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsesh/zsesh/internal/model"
)

func TestResolveRootUsesRecordedMapping(t *testing.T) {
	h := newHarness(t)
	_, api := gitRepo(t, "api")
	require.NoError(t, h.state.SetRoot("proj_api", api))
	h.mux.sessions = []model.Session{{Name: "proj_api", IsCurrent: true}}

	got, err := h.engine.ResolveRoot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, api, got, "root round-trips the creation-time path")
}

func TestResolveRootFallsBackToRepositoryOfCwd(t *testing.T) {
	h := newHarness(t)
	root, api := gitRepo(t, "api")
	h.mux.sessions = []model.Session{{Name: "unmapped", IsCurrent: true}}
	h.engine.getwd = func() (string, error) { return api, nil }

	got, err := h.engine.ResolveRoot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestResolveRootUnknownOutsideRepository(t *testing.T) {
	h := newHarness(t)
	h.mux.sessions = []model.Session{{Name: "unmapped", IsCurrent: true}}
	h.engine.getwd = func() (string, error) { return t.TempDir(), nil }

	_, err := h.engine.ResolveRoot(context.Background())
	assert.True(t, errors.Is(err, model.ErrRootUnknown))
}

func TestResolveRootWithoutCurrentSession(t *testing.T) {
	h := newHarness(t)
	h.mux.sessions = []model.Session{{Name: "idle"}}

	_, err := h.engine.ResolveRoot(context.Background())
	assert.True(t, errors.Is(err, model.ErrRootUnknown))
}

func TestPreviewTargetSession(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.state.SetRoot("work", "/home/u/work"))
	h.mux.sessions = []model.Session{{Name: "work", IsCurrent: true}}

	p, err := h.engine.PreviewTarget(context.Background(), "work")
	require.NoError(t, err)
	require.NotNil(t, p.Session)
	assert.True(t, p.Session.IsCurrent)
	assert.Equal(t, "/home/u/work", p.Path)
}

func TestPreviewTargetDirectory(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	p, err := h.engine.PreviewTarget(context.Background(), dir)
	require.NoError(t, err)
	assert.Nil(t, p.Session)
	assert.Equal(t, dir, p.Path)
	assert.False(t, p.ViaQuery)
}

func TestPreviewTargetViaQuery(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	h.dirs.entries = []model.DirEntry{{Path: dir, Score: 10}}

	p, err := h.engine.PreviewTarget(context.Background(), dir[1:4])
	require.NoError(t, err)
	assert.Equal(t, dir, p.Path)
	assert.True(t, p.ViaQuery)
}

func TestPreviewTargetNotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.engine.PreviewTarget(context.Background(), "nothing-here")
	assert.True(t, errors.Is(err, model.ErrTargetNotFound))
}
