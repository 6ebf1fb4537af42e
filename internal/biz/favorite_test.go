package biz

import (
	"context"
	"testing"

	"moviezone/internal/conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteKeepsDuplicatesByDefault(t *testing.T) {
	ctx := context.Background()
	uc := NewFavoriteUseCase(newFakeKV(), nil, testLogger)

	favorites, err := uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	movie := &Movie{ID: "tt001", Title: "A"}
	require.NoError(t, uc.AddFavorite(ctx, movie))

	favorites, err = uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Movie{{ID: "tt001", Title: "A"}}, favorites)

	require.NoError(t, uc.AddFavorite(ctx, movie))

	favorites, err = uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}

func TestAddFavoriteWithDedup(t *testing.T) {
	ctx := context.Background()
	uc := NewFavoriteUseCase(newFakeKV(), &conf.Favorites{Dedup: true}, testLogger)

	movie := &Movie{ID: "tt001", Title: "A"}
	require.NoError(t, uc.AddFavorite(ctx, movie))
	require.NoError(t, uc.AddFavorite(ctx, movie))

	favorites, err := uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestAddFavoriteRejectsMovieWithoutID(t *testing.T) {
	kv := newFakeKV()
	uc := NewFavoriteUseCase(kv, nil, testLogger)

	assert.ErrorIs(t, uc.AddFavorite(context.Background(), &Movie{Title: "No id"}), ErrInvalidMovie)
	assert.ErrorIs(t, uc.AddFavorite(context.Background(), nil), ErrInvalidMovie)
	assert.Zero(t, kv.sets)
}

func TestRemoveFavoriteDropsEveryEntryOfID(t *testing.T) {
	ctx := context.Background()
	uc := NewFavoriteUseCase(newFakeKV(), nil, testLogger)

	require.NoError(t, uc.AddFavorite(ctx, &Movie{ID: "tt001"}))
	require.NoError(t, uc.AddFavorite(ctx, &Movie{ID: "tt002"}))
	require.NoError(t, uc.AddFavorite(ctx, &Movie{ID: "tt001"}))

	require.NoError(t, uc.RemoveFavorite(ctx, "tt001"))

	favorites, err := uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Movie{{ID: "tt002"}}, favorites)

	ok, err := uc.IsFavorite(ctx, "tt001")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent id is a no-op.
	require.NoError(t, uc.RemoveFavorite(ctx, "tt404"))
	favorites, err = uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	uc := NewFavoriteUseCase(newFakeKV(), nil, testLogger)
	movie := &Movie{ID: "tt001", Title: "A"}

	isFavorite, err := uc.ToggleFavorite(ctx, movie)
	require.NoError(t, err)
	assert.True(t, isFavorite)

	ok, err := uc.IsFavorite(ctx, "tt001")
	require.NoError(t, err)
	assert.True(t, ok)

	isFavorite, err = uc.ToggleFavorite(ctx, movie)
	require.NoError(t, err)
	assert.False(t, isFavorite)

	favorites, err := uc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesStorageFailureIsReported(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errBackend
	uc := NewFavoriteUseCase(kv, nil, testLogger)

	favorites, err := uc.ListFavorites(context.Background())
	require.ErrorIs(t, err, errBackend)
	assert.Empty(t, favorites)

	_, err = uc.IsFavorite(context.Background(), "tt001")
	require.ErrorIs(t, err, errBackend)
}
