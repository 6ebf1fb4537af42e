package service

import (
	"context"
	"errors"
	"fmt"

	v1 "moviezone/api/moviezone/v1"
	"moviezone/internal/biz"

	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewMovieZoneService)

// MovieZoneService implements the MovieZone API
type MovieZoneService struct {
	favoriteUC *biz.FavoriteUseCase
	reviewUC   *biz.ReviewUseCase
	movieUC    *biz.MovieUseCase
	sessions   *biz.SessionManager
}

// NewMovieZoneService creates a new MovieZoneService
func NewMovieZoneService(
	favoriteUC *biz.FavoriteUseCase,
	reviewUC *biz.ReviewUseCase,
	movieUC *biz.MovieUseCase,
	sessions *biz.SessionManager,
) *MovieZoneService {
	return &MovieZoneService{
		favoriteUC: favoriteUC,
		reviewUC:   reviewUC,
		movieUC:    movieUC,
		sessions:   sessions,
	}
}

type sessionKey struct{}

// NewSessionContext returns a context carrying the caller's search session id.
func NewSessionContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

func sessionFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok && id != "" {
		return id
	}
	return biz.DefaultSessionID
}

// Search implements a new paginated search. A blank query leaves the session
// untouched and is reported as QUERY_EMPTY rather than dropped silently, so
// HTTP clients can tell it apart from a search with no matches.
func (s *MovieZoneService) Search(ctx context.Context, req *v1.SearchRequest) (*v1.SearchStateReply, error) {
	state, err := s.sessions.Session(sessionFromContext(ctx)).Search(ctx, req.Q)
	if err != nil {
		return nil, catalogError(err)
	}
	return stateToProto(state), nil
}

// LoadMore implements fetching the next page of the active search
func (s *MovieZoneService) LoadMore(ctx context.Context, req *v1.LoadMoreRequest) (*v1.SearchStateReply, error) {
	state, err := s.sessions.Session(sessionFromContext(ctx)).LoadMore(ctx)
	if err != nil {
		return nil, catalogError(err)
	}
	return stateToProto(state), nil
}

// SearchState returns the caller's session state
func (s *MovieZoneService) SearchState(ctx context.Context, req *v1.SearchStateRequest) (*v1.SearchStateReply, error) {
	return stateToProto(s.sessions.Session(sessionFromContext(ctx)).State()), nil
}

// ResetSearch returns the caller's session to idle
func (s *MovieZoneService) ResetSearch(ctx context.Context, req *v1.ResetSearchRequest) (*v1.SearchStateReply, error) {
	return stateToProto(s.sessions.Session(sessionFromContext(ctx)).Reset()), nil
}

// GetMovieDetails implements the composed details view
func (s *MovieZoneService) GetMovieDetails(ctx context.Context, req *v1.GetMovieDetailsRequest) (*v1.GetMovieDetailsReply, error) {
	details, err := s.movieUC.GetDetails(ctx, req.Id)
	if err != nil {
		return nil, catalogError(err)
	}
	return &v1.GetMovieDetailsReply{
		Movie:      movieToProto(details.Movie),
		IsFavorite: details.IsFavorite,
		Reviews:    reviewsToProto(details.Reviews),
	}, nil
}

// ListFavorites implements favorites listing
func (s *MovieZoneService) ListFavorites(ctx context.Context, req *v1.ListFavoritesRequest) (*v1.ListFavoritesReply, error) {
	favorites, err := s.favoriteUC.ListFavorites(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	reply := &v1.ListFavoritesReply{Items: make([]*v1.Movie, 0, len(favorites))}
	for i := range favorites {
		reply.Items = append(reply.Items, movieToProto(&favorites[i]))
	}
	return reply, nil
}

// IsFavorite implements the favorite status check
func (s *MovieZoneService) IsFavorite(ctx context.Context, req *v1.IsFavoriteRequest) (*v1.IsFavoriteReply, error) {
	ok, err := s.favoriteUC.IsFavorite(ctx, req.Id)
	if err != nil {
		return nil, storageError(err)
	}
	return &v1.IsFavoriteReply{IsFavorite: ok}, nil
}

// AddFavorite implements adding a favorite
func (s *MovieZoneService) AddFavorite(ctx context.Context, req *v1.AddFavoriteRequest) (*v1.Empty, error) {
	movie, err := favoriteFromRequest(req.Id, req.Movie)
	if err != nil {
		return nil, inputError(err)
	}
	if err := s.favoriteUC.AddFavorite(ctx, movie); err != nil {
		return nil, storageError(err)
	}
	return &v1.Empty{}, nil
}

// ToggleFavorite implements the details-screen favorite toggle
func (s *MovieZoneService) ToggleFavorite(ctx context.Context, req *v1.ToggleFavoriteRequest) (*v1.ToggleFavoriteReply, error) {
	movie, err := favoriteFromRequest(req.Id, req.Movie)
	if err != nil {
		return nil, inputError(err)
	}
	isFavorite, err := s.favoriteUC.ToggleFavorite(ctx, movie)
	if err != nil {
		return nil, storageError(err)
	}
	return &v1.ToggleFavoriteReply{IsFavorite: isFavorite}, nil
}

// RemoveFavorite implements favorite removal
func (s *MovieZoneService) RemoveFavorite(ctx context.Context, req *v1.RemoveFavoriteRequest) (*v1.Empty, error) {
	if err := s.favoriteUC.RemoveFavorite(ctx, req.Id); err != nil {
		return nil, storageError(err)
	}
	return &v1.Empty{}, nil
}

// ListReviews implements review listing
func (s *MovieZoneService) ListReviews(ctx context.Context, req *v1.ListReviewsRequest) (*v1.ListReviewsReply, error) {
	reviews, err := s.reviewUC.ListReviews(ctx, req.Id)
	if err != nil {
		return nil, storageError(err)
	}
	return &v1.ListReviewsReply{Items: reviewsToProto(reviews)}, nil
}

// SubmitReview implements review submission. Blank text or a rating outside
// 1..5 stores nothing and is reported as REVIEW_INVALID rather than dropped
// silently.
func (s *MovieZoneService) SubmitReview(ctx context.Context, req *v1.SubmitReviewRequest) (*v1.SubmitReviewReply, error) {
	review, err := s.reviewUC.SubmitReview(ctx, req.Id, req.Text, int(req.Rating))
	if err != nil {
		return nil, storageError(err)
	}
	return &v1.SubmitReviewReply{Review: reviewToProto(*review)}, nil
}

// ClearReviews implements bulk review deletion
func (s *MovieZoneService) ClearReviews(ctx context.Context, req *v1.ClearReviewsRequest) (*v1.Empty, error) {
	if err := s.reviewUC.ClearReviews(ctx, req.Id); err != nil {
		return nil, storageError(err)
	}
	return &v1.Empty{}, nil
}

// HealthCheck implements health check
func (s *MovieZoneService) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckReply, error) {
	return &v1.HealthCheckReply{
		Status: "ok",
	}, nil
}

// inputError maps validation and state errors shared by every operation.
func inputError(err error) error {
	switch {
	case errors.Is(err, biz.ErrMovieNotFound):
		return v1.ErrorMovieNotFound("%v", err)
	case errors.Is(err, biz.ErrInvalidMovie):
		return v1.ErrorMovieInvalid("%v", err)
	case errors.Is(err, biz.ErrInvalidReview):
		return v1.ErrorReviewInvalid("%v", err)
	case errors.Is(err, biz.ErrEmptyQuery):
		return v1.ErrorQueryEmpty("%v", err)
	case errors.Is(err, biz.ErrNoActiveSearch):
		return v1.ErrorSearchNotActive("%v", err)
	case errors.Is(err, biz.ErrSearchExhausted):
		return v1.ErrorSearchExhausted("%v", err)
	}
	return nil
}

func storageError(err error) error {
	if e := inputError(err); e != nil {
		return e
	}
	return v1.ErrorStorageUnavailable("%v", err)
}

func catalogError(err error) error {
	if e := inputError(err); e != nil {
		return e
	}
	return v1.ErrorCatalogUnavailable("%v", err)
}

// Helper functions

// favoriteFromRequest takes the id from the path; a body naming another movie is rejected.
func favoriteFromRequest(id string, m *v1.Movie) (*biz.Movie, error) {
	movie := movieFromProto(m)
	if movie == nil {
		movie = &biz.Movie{}
	}
	if movie.ID != "" && id != "" && movie.ID != id {
		return nil, fmt.Errorf("%w: body id %q does not match path id %q", biz.ErrInvalidMovie, movie.ID, id)
	}
	if movie.ID == "" {
		movie.ID = id
	}
	return movie, nil
}

func movieFromProto(m *v1.Movie) *biz.Movie {
	if m == nil {
		return nil
	}
	movie := &biz.Movie{
		ID:         m.ImdbID,
		Title:      m.Title,
		Year:       m.Year,
		Type:       m.Type,
		Poster:     m.Poster,
		Rated:      m.Rated,
		Released:   m.Released,
		Runtime:    m.Runtime,
		Genre:      m.Genre,
		Director:   m.Director,
		Writer:     m.Writer,
		Actors:     m.Actors,
		Plot:       m.Plot,
		Language:   m.Language,
		Country:    m.Country,
		Awards:     m.Awards,
		Metascore:  m.Metascore,
		ImdbRating: m.ImdbRating,
		ImdbVotes:  m.ImdbVotes,
		BoxOffice:  m.BoxOffice,
	}
	for _, r := range m.Ratings {
		if r != nil {
			movie.Ratings = append(movie.Ratings, biz.Rating{Source: r.Source, Value: r.Value})
		}
	}
	return movie
}

func movieToProto(m *biz.Movie) *v1.Movie {
	if m == nil {
		return nil
	}
	movie := &v1.Movie{
		ImdbID:     m.ID,
		Title:      m.Title,
		Year:       m.Year,
		Type:       m.Type,
		Poster:     m.Poster,
		Rated:      m.Rated,
		Released:   m.Released,
		Runtime:    m.Runtime,
		Genre:      m.Genre,
		Director:   m.Director,
		Writer:     m.Writer,
		Actors:     m.Actors,
		Plot:       m.Plot,
		Language:   m.Language,
		Country:    m.Country,
		Awards:     m.Awards,
		Metascore:  m.Metascore,
		ImdbRating: m.ImdbRating,
		ImdbVotes:  m.ImdbVotes,
		BoxOffice:  m.BoxOffice,
	}
	for _, r := range m.Ratings {
		movie.Ratings = append(movie.Ratings, &v1.Rating{Source: r.Source, Value: r.Value})
	}
	return movie
}

func reviewToProto(r biz.Review) *v1.Review {
	return &v1.Review{
		Id:     r.ID,
		Text:   r.Text,
		Rating: int32(r.Rating),
	}
}

func reviewsToProto(reviews []biz.Review) []*v1.Review {
	out := make([]*v1.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewToProto(r))
	}
	return out
}

func stateToProto(state biz.SearchState) *v1.SearchStateReply {
	reply := &v1.SearchStateReply{
		Query:       state.Query,
		CurrentPage: int32(state.CurrentPage),
		Results:     make([]*v1.Movie, 0, len(state.Results)),
		IsLoading:   state.IsLoading,
		IsActive:    state.IsActive,
		Exhausted:   state.Exhausted,
	}
	for i := range state.Results {
		reply.Results = append(reply.Results, movieToProto(&state.Results[i]))
	}
	return reply
}
