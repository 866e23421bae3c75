package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/lookahead/pkg/lookahead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteStore_SpoolReplay(t *testing.T) {
	store, cleanup := _tempStore(t)
	defer cleanup()

	lines := []string{"A", "B", "C"}
	err := store.Spool(lookahead.FromSlice(lines), "test")
	require.NoError(t, err)

	src, err := store.Replay("test")
	require.NoError(t, err)
	assert.Equal(t, 3, src.Remaining())

	got, err := lookahead.Collect[string](src)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
	assert.Equal(t, 0, src.Remaining())
}

func TestSqliteStore_SpoolAppends(t *testing.T) {
	store, cleanup := _tempStore(t)
	defer cleanup()

	require.NoError(t, store.Spool(lookahead.FromSlice([]string{"A", "B"}), "test"))
	require.NoError(t, store.Spool(lookahead.FromSlice([]string{"C"}), "test"))

	src, err := store.Replay("test")
	require.NoError(t, err)
	got, err := lookahead.Collect[string](src)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestSqliteStore_ReplayForwardsExactSize(t *testing.T) {
	store, cleanup := _tempStore(t)
	defer cleanup()

	require.NoError(t, store.Spool(lookahead.FromSlice([]string{"A", "B", "C", "D"}), "test"))

	src, err := store.Replay("test")
	require.NoError(t, err)
	buf := lookahead.New[string](src)

	remaining, ok := buf.Remaining()
	require.True(t, ok)
	assert.Equal(t, 4, remaining)

	_, ok = buf.Peek(1)
	require.True(t, ok)
	remaining, ok = buf.Remaining()
	require.True(t, ok)
	assert.Equal(t, 4, remaining, "Buffering rows should not change the remaining count")

	_, _ = buf.Pop()
	remaining, ok = buf.Remaining()
	require.True(t, ok)
	assert.Equal(t, 3, remaining)
}

func TestSqliteStore_BadTable(t *testing.T) {
	store, cleanup := _tempStore(t)
	defer cleanup()

	err := store.Spool(lookahead.FromSlice([]string{"A"}), "bad name; drop table")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrBadTable)

	_, err = store.Replay("bad name; drop table")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrBadTable)
}

func _tempStore(t *testing.T) (*SqliteStore, func()) {
	log := hclog.Default()
	log.SetLevel(hclog.Debug)
	td, err := os.MkdirTemp("", "_tempStore-*")
	require.NoError(t, err)
	t.Log("Using temp store:", td)
	store, err := New(log, filepath.Join(td, "store.db"))
	if err != nil {
		_ = os.RemoveAll(td)
		t.Fatal("Failed to create new store:", err)
	}

	return store, func() {
		if err := store.Close(); err != nil {
			t.Error("Failed to close DB")
		} else {
			t.Log("SqliteStore closed")
		}
		if err := os.RemoveAll(td); err != nil {
			t.Error("Failed to remove temp dir:", err)
		} else {
			t.Log("Removed temp dir")
		}
	}
}
