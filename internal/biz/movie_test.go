package biz

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMovieUseCase(kv KVStore, catalog CatalogClient) (*MovieUseCase, *FavoriteUseCase, *ReviewUseCase) {
	favorites := NewFavoriteUseCase(kv, nil, testLogger)
	reviews := NewReviewUseCase(kv, testLogger)
	return NewMovieUseCase(catalog, favorites, reviews, testLogger), favorites, reviews
}

func TestGetDetailsComposesFavoriteAndReviews(t *testing.T) {
	ctx := context.Background()
	movie := &Movie{ID: "tt001", Title: "A", Plot: "Things happen.", ImdbRating: "7.9"}
	catalog := new(mockCatalog)
	catalog.On("GetMovieDetails", mock.Anything, "tt001").Return(movie, nil)
	uc, favorites, reviews := newTestMovieUseCase(newFakeKV(), catalog)

	require.NoError(t, favorites.AddFavorite(ctx, &Movie{ID: "tt001", Title: "A"}))
	review, err := reviews.SubmitReview(ctx, "tt001", "Great film", 5)
	require.NoError(t, err)

	details, err := uc.GetDetails(ctx, "tt001")
	require.NoError(t, err)
	assert.Equal(t, movie, details.Movie)
	assert.True(t, details.IsFavorite)
	assert.Equal(t, []Review{*review}, details.Reviews)
}

func TestGetDetailsNotFound(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("GetMovieDetails", mock.Anything, "tt404").
		Return(nil, fmt.Errorf("%w: tt404", ErrMovieNotFound))
	uc, _, _ := newTestMovieUseCase(newFakeKV(), catalog)

	_, err := uc.GetDetails(context.Background(), "tt404")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetDetailsDegradesOnStorageFailure(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errBackend
	catalog := new(mockCatalog)
	catalog.On("GetMovieDetails", mock.Anything, "tt001").Return(&Movie{ID: "tt001"}, nil)
	uc, _, _ := newTestMovieUseCase(kv, catalog)

	details, err := uc.GetDetails(context.Background(), "tt001")
	require.NoError(t, err)
	assert.False(t, details.IsFavorite)
	assert.Empty(t, details.Reviews)
}
