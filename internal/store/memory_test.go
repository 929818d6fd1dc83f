package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/concentration/apps/go-server/internal/game"
)

func TestMemoryStore_SaveViewDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := game.New(game.WithID("g1"))

	require.NoError(t, st.Save(ctx, g))
	assert.Equal(t, 1, st.Len())

	var seen *game.Game
	require.NoError(t, st.View(ctx, "g1", func(x *game.Game) error {
		seen = x
		return nil
	}))
	assert.Same(t, g, seen)

	require.NoError(t, st.Delete(ctx, "g1"))
	assert.Equal(t, 0, st.Len())
	assert.ErrorIs(t, st.Delete(ctx, "g1"), ErrNotFound)
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	called := false
	fn := func(*game.Game) error { called = true; return nil }

	assert.ErrorIs(t, st.View(ctx, "missing", fn), ErrNotFound)
	assert.ErrorIs(t, st.Update(ctx, "missing", fn), ErrNotFound)
	assert.False(t, called)
}

func TestMemoryStore_UpdatePropagatesError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, game.New(game.WithID("g1"))))

	boom := errors.New("boom")
	err := st.Update(ctx, "g1", func(*game.Game) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	assert.ErrorIs(t, st.Save(ctx, game.New()), context.Canceled)
}

func TestMemoryStore_UpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := game.New(game.WithID("g1"), game.WithDeck(game.BuildDeck()))
	require.NoError(t, st.Save(ctx, g))

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, "g1", func(g *game.Game) error {
				g.HandleReset()
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, st.View(ctx, "g1", func(g *game.Game) error {
		assert.Equal(t, workers, g.Resets)
		assert.Len(t, g.Deck, game.DeckSize)
		return nil
	}))
}
