package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "stream closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for preference value")
		return ""
	}
}

func testStore(t *testing.T, name string, newStore func(t *testing.T) UserPreferences) {
	t.Run(name+"/empty_then_saved", func(t *testing.T) {
		store := newStore(t)

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		stream := store.UserInput(ctx)
		assert.Equal(t, "", receive(t, stream))

		require.NoError(t, store.SaveUserInput(ctx, "1234"))
		assert.Equal(t, "1234", receive(t, stream))
	})

	t.Run(name+"/last_write_wins", func(t *testing.T) {
		store := newStore(t)

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		require.NoError(t, store.SaveUserInput(ctx, "first"))
		require.NoError(t, store.SaveUserInput(ctx, "second"))

		assert.Equal(t, "second", receive(t, store.UserInput(ctx)))
	})

	t.Run(name+"/closed_on_cancel", func(t *testing.T) {
		store := newStore(t)

		ctx, cancel := context.WithCancel(t.Context())
		stream := store.UserInput(ctx)
		receive(t, stream)
		cancel()

		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-stream:
				return !ok
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestStores(t *testing.T) {
	testStore(t, "badger", func(t *testing.T) UserPreferences {
		s, err := OpenInMemory()
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		return s
	})

	testStore(t, "memory", func(t *testing.T) UserPreferences {
		return NewMemory("")
	})
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveUserInput(t.Context(), "1234"))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	assert.Equal(t, "1234", receive(t, s.UserInput(ctx)))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}
