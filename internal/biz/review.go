package biz

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const (
	minReviewRating = 1
	maxReviewRating = 5
)

// ReviewsKey returns the storage key of the review collection for movieID.
func ReviewsKey(movieID string) string {
	return "reviews_" + movieID
}

// ReviewUseCase handles review-related business logic
type ReviewUseCase struct {
	store *CollectionStore[Review]
	log   *log.Helper
}

// NewReviewUseCase creates a new ReviewUseCase instance
func NewReviewUseCase(kv KVStore, logger log.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		store: NewCollectionStore[Review](kv, logger),
		log:   log.NewHelper(logger),
	}
}

// ListReviews returns the reviews of a movie, newest first.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, movieID string) ([]Review, error) {
	return uc.store.Get(ctx, ReviewsKey(movieID))
}

// SubmitReview validates and stores a new review at the head of the movie's collection.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, movieID, text string, rating int) (*Review, error) {
	if movieID == "" {
		return nil, ErrInvalidMovie
	}
	if strings.TrimSpace(text) == "" || rating < minReviewRating || rating > maxReviewRating {
		return nil, ErrInvalidReview
	}

	// UUID v7 is time-ordered, so ids follow creation order.
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate review ID: %w", err)
	}

	review := Review{
		ID:     id.String(),
		Text:   text,
		Rating: rating,
	}

	if err := uc.store.Prepend(ctx, ReviewsKey(movieID), review); err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	return &review, nil
}

// ClearReviews deletes the whole review collection of a movie.
func (uc *ReviewUseCase) ClearReviews(ctx context.Context, movieID string) error {
	if movieID == "" {
		return ErrInvalidMovie
	}
	return uc.store.Clear(ctx, ReviewsKey(movieID))
}
