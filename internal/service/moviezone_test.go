package service

import (
	"context"
	"errors"
	"testing"

	v1 "moviezone/api/moviezone/v1"
	"moviezone/internal/biz"
	"moviezone/internal/conf"
	"moviezone/internal/data"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = log.NewFilter(log.DefaultLogger, log.FilterLevel(log.LevelError))

type stubCatalog struct {
	pages map[int][]biz.Movie
	err   error
}

func (c *stubCatalog) SearchMovies(_ context.Context, _ string, page int) ([]biz.Movie, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.pages[page], nil
}

func (c *stubCatalog) GetMovieDetails(_ context.Context, id string) (*biz.Movie, error) {
	for _, page := range c.pages {
		for i := range page {
			if page[i].ID == id {
				return &page[i], nil
			}
		}
	}
	return nil, biz.ErrMovieNotFound
}

func newTestService(t *testing.T, catalog biz.CatalogClient) *MovieZoneService {
	t.Helper()
	d, cleanup, err := data.NewData(&conf.Data{Store: &conf.Data_Store{Driver: data.DriverMemory}}, testLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	kv := data.NewKVStore(d)
	favorites := biz.NewFavoriteUseCase(kv, nil, testLogger)
	reviews := biz.NewReviewUseCase(kv, testLogger)
	movies := biz.NewMovieUseCase(catalog, favorites, reviews, testLogger)
	sessions, err := biz.NewSessionManager(catalog, nil, testLogger)
	require.NoError(t, err)

	return NewMovieZoneService(favorites, reviews, movies, sessions)
}

func TestFavoritesFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &stubCatalog{})

	_, err := svc.AddFavorite(ctx, &v1.AddFavoriteRequest{Id: "tt001", Movie: &v1.Movie{Title: "A"}})
	require.NoError(t, err)

	list, err := svc.ListFavorites(ctx, &v1.ListFavoritesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "tt001", list.Items[0].ImdbID)
	assert.Equal(t, "A", list.Items[0].Title)

	toggled, err := svc.ToggleFavorite(ctx, &v1.ToggleFavoriteRequest{Id: "tt001"})
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)

	status, err := svc.IsFavorite(ctx, &v1.IsFavoriteRequest{Id: "tt001"})
	require.NoError(t, err)
	assert.False(t, status.IsFavorite)
}

func TestFavoriteRejectsBodyForAnotherMovie(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &stubCatalog{})

	_, err := svc.AddFavorite(ctx, &v1.AddFavoriteRequest{Id: "tt1", Movie: &v1.Movie{ImdbID: "tt2", Title: "B"}})
	assert.True(t, v1.IsMovieInvalid(err))

	_, err = svc.ToggleFavorite(ctx, &v1.ToggleFavoriteRequest{Id: "tt1", Movie: &v1.Movie{ImdbID: "tt2"}})
	assert.True(t, v1.IsMovieInvalid(err))

	list, err := svc.ListFavorites(ctx, &v1.ListFavoritesRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = svc.AddFavorite(ctx, &v1.AddFavoriteRequest{Id: "tt1", Movie: &v1.Movie{ImdbID: "tt1", Title: "A"}})
	require.NoError(t, err)
}

func TestSubmitReviewErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &stubCatalog{})

	reply, err := svc.SubmitReview(ctx, &v1.SubmitReviewRequest{Id: "tt001", Text: "Great film", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, int32(5), reply.Review.Rating)

	_, err = svc.SubmitReview(ctx, &v1.SubmitReviewRequest{Id: "tt001", Text: "", Rating: 0})
	assert.True(t, v1.IsReviewInvalid(err))

	list, err := svc.ListReviews(ctx, &v1.ListReviewsRequest{Id: "tt001"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestSearchUsesSessionFromContext(t *testing.T) {
	catalog := &stubCatalog{pages: map[int][]biz.Movie{
		1: {{ID: "tt1"}, {ID: "tt2"}, {ID: "tt3"}, {ID: "tt4"}},
		2: {{ID: "tt5"}},
	}}
	svc := newTestService(t, catalog)
	alice := NewSessionContext(context.Background(), "alice")

	state, err := svc.Search(alice, &v1.SearchRequest{Q: "matrix"})
	require.NoError(t, err)
	assert.Len(t, state.Results, 3)

	assert.False(t, state.IsLoading)

	state, err = svc.LoadMore(alice, &v1.LoadMoreRequest{})
	require.NoError(t, err)
	assert.Len(t, state.Results, 4)
	assert.Equal(t, int32(2), state.CurrentPage)
	assert.False(t, state.IsLoading)

	_, err = svc.LoadMore(context.Background(), &v1.LoadMoreRequest{})
	assert.True(t, v1.IsSearchNotActive(err))

	state, err = svc.ResetSearch(alice, &v1.ResetSearchRequest{})
	require.NoError(t, err)
	assert.False(t, state.IsActive)
	assert.Empty(t, state.Results)
}

func TestSearchErrorMapping(t *testing.T) {
	svc := newTestService(t, &stubCatalog{err: errors.New("dial tcp: refused")})

	_, err := svc.Search(context.Background(), &v1.SearchRequest{Q: "  "})
	assert.True(t, v1.IsQueryEmpty(err))

	_, err = svc.Search(context.Background(), &v1.SearchRequest{Q: "matrix"})
	assert.True(t, v1.IsCatalogUnavailable(err))
}

func TestGetMovieDetails(t *testing.T) {
	ctx := context.Background()
	catalog := &stubCatalog{pages: map[int][]biz.Movie{1: {{ID: "tt001", Title: "A", Plot: "Plot"}}}}
	svc := newTestService(t, catalog)

	_, err := svc.AddFavorite(ctx, &v1.AddFavoriteRequest{Id: "tt001", Movie: &v1.Movie{ImdbID: "tt001", Title: "A"}})
	require.NoError(t, err)

	details, err := svc.GetMovieDetails(ctx, &v1.GetMovieDetailsRequest{Id: "tt001"})
	require.NoError(t, err)
	assert.Equal(t, "Plot", details.Movie.Plot)
	assert.True(t, details.IsFavorite)
	assert.Empty(t, details.Reviews)

	_, err = svc.GetMovieDetails(ctx, &v1.GetMovieDetailsRequest{Id: "tt404"})
	assert.True(t, v1.IsMovieNotFound(err))
}
