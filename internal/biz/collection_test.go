package biz

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCollectionStore[Movie](newFakeKV(), testLogger)

	cases := map[string][]Movie{
		"empty":  {},
		"single": {{ID: "tt001", Title: "A"}},
		"many":   moviePage("tt", 5),
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Replace(ctx, name, items))

			got, err := store.Get(ctx, name)
			require.NoError(t, err)
			assert.Equal(t, items, got)
		})
	}
}

func TestCollectionStoreAbsentKeyIsEmpty(t *testing.T) {
	store := NewCollectionStore[Review](newFakeKV(), testLogger)

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectionStoreMalformedData(t *testing.T) {
	kv := newFakeKV()
	kv.values["favoriteMovies"] = "{not json"
	store := NewCollectionStore[Movie](kv, testLogger)

	got, err := store.Get(context.Background(), "favoriteMovies")
	require.ErrorIs(t, err, ErrCorruptCollection)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectionStoreBackendFailure(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errBackend
	store := NewCollectionStore[Movie](kv, testLogger)

	got, err := store.Get(context.Background(), "favoriteMovies")
	require.ErrorIs(t, err, errBackend)
	assert.Empty(t, got)

	err = store.Add(context.Background(), "favoriteMovies", Movie{ID: "tt001"})
	require.ErrorIs(t, err, errBackend)
	assert.Zero(t, kv.sets, "a failed read must not be turned into a write")
}

func TestCollectionStoreRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewCollectionStore[Movie](newFakeKV(), testLogger)
	original := moviePage("tt", 3)
	require.NoError(t, store.Replace(ctx, "k", original))

	removed, err := store.Remove(ctx, "k", func(m Movie) bool { return m.ID == "nope" })
	require.NoError(t, err)
	assert.Zero(t, removed)

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestCollectionStoreAddRemoveInverse(t *testing.T) {
	ctx := context.Background()
	store := NewCollectionStore[Movie](newFakeKV(), testLogger)
	original := moviePage("tt", 3)
	require.NoError(t, store.Replace(ctx, "k", original))

	added := Movie{ID: "tt999", Title: "Added"}
	require.NoError(t, store.Add(ctx, "k", added))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, added, got[len(got)-1])

	removed, err := store.Remove(ctx, "k", func(m Movie) bool { return m.ID == added.ID })
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestCollectionStorePrepend(t *testing.T) {
	ctx := context.Background()
	store := NewCollectionStore[Review](newFakeKV(), testLogger)

	require.NoError(t, store.Prepend(ctx, "k", Review{ID: "1"}))
	require.NoError(t, store.Prepend(ctx, "k", Review{ID: "2"}))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestCollectionStoreConcurrentAddsKeepEveryWrite(t *testing.T) {
	ctx := context.Background()
	store := NewCollectionStore[Movie](newFakeKV(), testLogger)
	movies := moviePage("tt", 50)

	var wg sync.WaitGroup
	for _, m := range movies {
		wg.Add(1)
		go func(m Movie) {
			defer wg.Done()
			assert.NoError(t, store.Add(ctx, "k", m))
		}(m)
	}
	wg.Wait()

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.ElementsMatch(t, movies, got)
	assert.Empty(t, store.locks.locks)
}

func TestCollectionStoreClear(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := NewCollectionStore[Movie](kv, testLogger)
	require.NoError(t, store.Replace(ctx, "k", moviePage("tt", 2)))

	require.NoError(t, store.Clear(ctx, "k"))

	_, ok := kv.values["k"]
	assert.False(t, ok)
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollectionStoreWriteFailure(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errBackend
	store := NewCollectionStore[Movie](kv, testLogger)

	err := store.Replace(context.Background(), "k", moviePage("tt", 1))
	require.ErrorIs(t, err, errBackend)
}
