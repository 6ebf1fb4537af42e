package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

// MovieUseCase composes the movie details view
type MovieUseCase struct {
	catalog   CatalogClient
	favorites *FavoriteUseCase
	reviews   *ReviewUseCase
	log       *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(catalog CatalogClient, favorites *FavoriteUseCase, reviews *ReviewUseCase, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		catalog:   catalog,
		favorites: favorites,
		reviews:   reviews,
		log:       log.NewHelper(logger),
	}
}

// GetDetails fetches the catalog record of movieID together with its
// favorite status and reviews. Only a catalog failure fails the call; local
// storage failures degrade to "not a favorite" and no reviews.
func (uc *MovieUseCase) GetDetails(ctx context.Context, movieID string) (*MovieDetails, error) {
	if movieID == "" {
		return nil, ErrInvalidMovie
	}

	details := &MovieDetails{Reviews: []Review{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movie, err := uc.catalog.GetMovieDetails(gctx, movieID)
		if err != nil {
			return fmt.Errorf("failed to get movie details: %w", err)
		}
		details.Movie = movie
		return nil
	})
	g.Go(func() error {
		isFavorite, err := uc.favorites.IsFavorite(gctx, movieID)
		if err != nil {
			uc.log.Warnf("favorite status of %s unavailable: %v", movieID, err)
			return nil
		}
		details.IsFavorite = isFavorite
		return nil
	})
	g.Go(func() error {
		reviews, err := uc.reviews.ListReviews(gctx, movieID)
		if err != nil {
			uc.log.Warnf("reviews of %s unavailable: %v", movieID, err)
			return nil
		}
		details.Reviews = reviews
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
