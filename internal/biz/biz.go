package biz

import (
	"errors"

	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(
	NewFavoriteUseCase,
	NewReviewUseCase,
	NewMovieUseCase,
	NewSessionManager,
)

// Custom errors
var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrInvalidMovie      = errors.New("movie must carry an id")
	ErrInvalidReview     = errors.New("review needs text and a rating between 1 and 5")
	ErrEmptyQuery        = errors.New("search query is empty")
	ErrNoActiveSearch    = errors.New("no active search")
	ErrSearchExhausted   = errors.New("search results exhausted")
	ErrCorruptCollection = errors.New("stored collection is malformed")
)
