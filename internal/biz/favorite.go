package biz

import (
	"context"
	"fmt"

	"moviezone/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

// FavoritesKey is the storage key of the favorites collection.
const FavoritesKey = "favoriteMovies"

// FavoriteUseCase owns every mutation of the favorites collection.
type FavoriteUseCase struct {
	store *CollectionStore[Movie]
	dedup bool
	log   *log.Helper
}

// NewFavoriteUseCase creates a new FavoriteUseCase instance.
// With dedup off, adding a movie that is already a favorite appends it again.
func NewFavoriteUseCase(kv KVStore, c *conf.Favorites, logger log.Logger) *FavoriteUseCase {
	dedup := false
	if c != nil {
		dedup = c.Dedup
	}
	return &FavoriteUseCase{
		store: NewCollectionStore[Movie](kv, logger),
		dedup: dedup,
		log:   log.NewHelper(logger),
	}
}

// ListFavorites returns favorites in insertion order.
func (uc *FavoriteUseCase) ListFavorites(ctx context.Context) ([]Movie, error) {
	return uc.store.Get(ctx, FavoritesKey)
}

// IsFavorite reports whether movieID is in the favorites collection.
func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, movieID string) (bool, error) {
	favorites, err := uc.store.Get(ctx, FavoritesKey)
	if err != nil {
		return false, err
	}
	return containsMovie(favorites, movieID), nil
}

// AddFavorite appends movie to the favorites collection.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, movie *Movie) error {
	if movie == nil || movie.ID == "" {
		return ErrInvalidMovie
	}

	err := uc.store.Update(ctx, FavoritesKey, func(favorites []Movie) ([]Movie, error) {
		if uc.dedup && containsMovie(favorites, movie.ID) {
			uc.log.Debugf("movie %s already a favorite", movie.ID)
			return favorites, nil
		}
		return append(favorites, *movie), nil
	})
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite drops every favorite entry with movieID. Removing an
// absent id leaves the collection unchanged.
func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, movieID string) error {
	removed, err := uc.store.Remove(ctx, FavoritesKey, func(m Movie) bool {
		return m.ID == movieID
	})
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	uc.log.Debugf("removed %d favorite entries for %s", removed, movieID)
	return nil
}

// ToggleFavorite removes movie when it is a favorite and adds it otherwise.
// It returns the resulting favorite status.
func (uc *FavoriteUseCase) ToggleFavorite(ctx context.Context, movie *Movie) (bool, error) {
	if movie == nil || movie.ID == "" {
		return false, ErrInvalidMovie
	}

	var isFavorite bool
	err := uc.store.Update(ctx, FavoritesKey, func(favorites []Movie) ([]Movie, error) {
		if containsMovie(favorites, movie.ID) {
			isFavorite = false
			kept := make([]Movie, 0, len(favorites))
			for _, m := range favorites {
				if m.ID != movie.ID {
					kept = append(kept, m)
				}
			}
			return kept, nil
		}
		isFavorite = true
		return append(favorites, *movie), nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return isFavorite, nil
}

func containsMovie(movies []Movie, movieID string) bool {
	for _, m := range movies {
		if m.ID == movieID {
			return true
		}
	}
	return false
}
