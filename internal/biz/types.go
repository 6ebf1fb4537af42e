package biz

import (
	"context"
)

// Movie domain model. Field names follow the catalog payload so stored
// favorites round-trip the catalog record field for field.
type Movie struct {
	ID         string   `json:"imdbID"`
	Title      string   `json:"Title"`
	Year       string   `json:"Year,omitempty"`
	Type       string   `json:"Type,omitempty"`
	Poster     string   `json:"Poster,omitempty"`
	Rated      string   `json:"Rated,omitempty"`
	Released   string   `json:"Released,omitempty"`
	Runtime    string   `json:"Runtime,omitempty"`
	Genre      string   `json:"Genre,omitempty"`
	Director   string   `json:"Director,omitempty"`
	Writer     string   `json:"Writer,omitempty"`
	Actors     string   `json:"Actors,omitempty"`
	Plot       string   `json:"Plot,omitempty"`
	Language   string   `json:"Language,omitempty"`
	Country    string   `json:"Country,omitempty"`
	Awards     string   `json:"Awards,omitempty"`
	Ratings    []Rating `json:"Ratings,omitempty"`
	Metascore  string   `json:"Metascore,omitempty"`
	ImdbRating string   `json:"imdbRating,omitempty"`
	ImdbVotes  string   `json:"imdbVotes,omitempty"`
	BoxOffice  string   `json:"BoxOffice,omitempty"`
}

// Rating is a third-party score attached to a catalog record.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Review domain model. Reviews are immutable once stored.
type Review struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// MovieDetails is the composed details view of a single movie.
type MovieDetails struct {
	Movie      *Movie
	IsFavorite bool
	Reviews    []Review
}

// SearchState is a point-in-time copy of a search session.
type SearchState struct {
	Query       string
	CurrentPage int
	Results     []Movie
	IsLoading   bool
	IsActive    bool
	Exhausted   bool
}

// KVStore is the device-local key-value persistence backend.
// Set must replace the value of a single key atomically.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CatalogClient defines the interface for the remote movie catalog.
type CatalogClient interface {
	// SearchMovies returns one catalog page; a query without matches yields an empty page.
	SearchMovies(ctx context.Context, query string, page int) ([]Movie, error)
	// GetMovieDetails returns ErrMovieNotFound when the catalog has no such id.
	GetMovieDetails(ctx context.Context, id string) (*Movie, error)
}
