package v1

import (
	fmt "fmt"

	errors "github.com/go-kratos/kratos/v2/errors"
)

// Error reasons returned in the kratos error body.
const (
	ErrorReasonMovieNotFound      = "MOVIE_NOT_FOUND"
	ErrorReasonMovieInvalid       = "MOVIE_INVALID"
	ErrorReasonReviewInvalid      = "REVIEW_INVALID"
	ErrorReasonQueryEmpty         = "QUERY_EMPTY"
	ErrorReasonSearchNotActive    = "SEARCH_NOT_ACTIVE"
	ErrorReasonSearchExhausted    = "SEARCH_EXHAUSTED"
	ErrorReasonStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrorReasonCatalogUnavailable = "CATALOG_UNAVAILABLE"
)

func IsMovieNotFound(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonMovieNotFound && e.Code == 404
}

func ErrorMovieNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReasonMovieNotFound, fmt.Sprintf(format, args...))
}

func IsMovieInvalid(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonMovieInvalid && e.Code == 400
}

func ErrorMovieInvalid(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ErrorReasonMovieInvalid, fmt.Sprintf(format, args...))
}

func IsReviewInvalid(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonReviewInvalid && e.Code == 422
}

func ErrorReviewInvalid(format string, args ...interface{}) *errors.Error {
	return errors.New(422, ErrorReasonReviewInvalid, fmt.Sprintf(format, args...))
}

func IsQueryEmpty(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonQueryEmpty && e.Code == 422
}

func ErrorQueryEmpty(format string, args ...interface{}) *errors.Error {
	return errors.New(422, ErrorReasonQueryEmpty, fmt.Sprintf(format, args...))
}

func IsSearchNotActive(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonSearchNotActive && e.Code == 409
}

func ErrorSearchNotActive(format string, args ...interface{}) *errors.Error {
	return errors.New(409, ErrorReasonSearchNotActive, fmt.Sprintf(format, args...))
}

func IsSearchExhausted(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonSearchExhausted && e.Code == 409
}

func ErrorSearchExhausted(format string, args ...interface{}) *errors.Error {
	return errors.New(409, ErrorReasonSearchExhausted, fmt.Sprintf(format, args...))
}

func IsStorageUnavailable(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonStorageUnavailable && e.Code == 503
}

func ErrorStorageUnavailable(format string, args ...interface{}) *errors.Error {
	return errors.New(503, ErrorReasonStorageUnavailable, fmt.Sprintf(format, args...))
}

func IsCatalogUnavailable(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReasonCatalogUnavailable && e.Code == 503
}

func ErrorCatalogUnavailable(format string, args ...interface{}) *errors.Error {
	return errors.New(503, ErrorReasonCatalogUnavailable, fmt.Sprintf(format, args...))
}
