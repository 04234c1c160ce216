package infile

import (
	"context"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
	storageErrors "github.com/danilovkiri/dk_go_wishlist/internal/storage/errors"
)

func newStorage(t *testing.T) (*Storage, hackpadfs.FS) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	return InitStorage(fsys, "extras.json", logrus.New()), fsys
}

func TestStorage_SetGetRemove(t *testing.T) {
	st, fsys := newStorage(t)
	ctx := context.Background()
	note := "size M"

	assert.True(t, st.Get(ctx, "1").IsEmpty())
	require.NoError(t, st.Set(ctx, "1", modelwish.WishFields{NotePrivate: &note, Tags: []string{"gift"}}))
	require.NoError(t, st.Set(ctx, "2", modelwish.WishFields{Tags: []string{"book"}}))

	got := st.Get(ctx, "1")
	require.NotNil(t, got.NotePrivate)
	assert.Equal(t, note, *got.NotePrivate)
	assert.Equal(t, []string{"gift"}, got.Tags)

	data, err := hackpadfs.ReadFile(fsys, "extras.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"note_private":"size M"`)

	require.NoError(t, st.Remove(ctx, "1"))
	require.NoError(t, st.Remove(ctx, "404"))
	assert.True(t, st.Get(ctx, "1").IsEmpty())
	assert.Equal(t, []string{"book"}, st.Get(ctx, "2").Tags)
}

func TestStorage_MalformedFileReadsEmpty(t *testing.T) {
	st, fsys := newStorage(t)
	ctx := context.Background()
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "extras.json", []byte("{not json"), 0o644))

	assert.True(t, st.Get(ctx, "1").IsEmpty())
	require.NoError(t, st.Set(ctx, "1", modelwish.WishFields{Tags: []string{"a"}}))
	assert.Equal(t, []string{"a"}, st.Get(ctx, "1").Tags)
}

func TestStorage_GetServesCachedDocument(t *testing.T) {
	st, fsys := newStorage(t)
	ctx := context.Background()
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "extras.json", []byte(`{"1":{"tags":["first"]}}`), 0o644))
	assert.Equal(t, []string{"first"}, st.Get(ctx, "1").Tags)

	require.NoError(t, hackpadfs.WriteFullFile(fsys, "extras.json", []byte(`{"1":{"tags":["outside"]}}`), 0o644))
	assert.Equal(t, []string{"first"}, st.Get(ctx, "1").Tags)

	require.NoError(t, st.Remove(ctx, "1"))
	assert.True(t, st.Get(ctx, "1").IsEmpty())
	reopened := InitStorage(fsys, "extras.json", logrus.New())
	assert.True(t, reopened.Get(ctx, "1").IsEmpty())
}

// readOnlyFS exposes Open only, so every write through hackpadfs fails.
type readOnlyFS struct {
	fsys hackpadfs.FS
}

func (r readOnlyFS) Open(name string) (hackpadfs.File, error) {
	return r.fsys.Open(name)
}

func TestStorage_FailedWriteDropsCache(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	st := InitStorage(readOnlyFS{fsys: fsys}, "extras.json", logrus.New())
	ctx := context.Background()

	var writeErr *storageErrors.FileWriteError
	require.ErrorAs(t, st.Set(ctx, "1", modelwish.WishFields{Tags: []string{"lost"}}), &writeErr)
	assert.True(t, st.Get(ctx, "1").IsEmpty())
}
