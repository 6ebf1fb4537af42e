// Package v1 is the public HTTP contract of the moviezone service.
package v1

// Movie is a catalog record, passed through field for field.
type Movie struct {
	ImdbID     string    `json:"imdbID"`
	Title      string    `json:"Title"`
	Year       string    `json:"Year,omitempty"`
	Type       string    `json:"Type,omitempty"`
	Poster     string    `json:"Poster,omitempty"`
	Rated      string    `json:"Rated,omitempty"`
	Released   string    `json:"Released,omitempty"`
	Runtime    string    `json:"Runtime,omitempty"`
	Genre      string    `json:"Genre,omitempty"`
	Director   string    `json:"Director,omitempty"`
	Writer     string    `json:"Writer,omitempty"`
	Actors     string    `json:"Actors,omitempty"`
	Plot       string    `json:"Plot,omitempty"`
	Language   string    `json:"Language,omitempty"`
	Country    string    `json:"Country,omitempty"`
	Awards     string    `json:"Awards,omitempty"`
	Ratings    []*Rating `json:"Ratings,omitempty"`
	Metascore  string    `json:"Metascore,omitempty"`
	ImdbRating string    `json:"imdbRating,omitempty"`
	ImdbVotes  string    `json:"imdbVotes,omitempty"`
	BoxOffice  string    `json:"BoxOffice,omitempty"`
}

type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

type Review struct {
	Id     string `json:"id"`
	Text   string `json:"text"`
	Rating int32  `json:"rating"`
}

type Empty struct{}

type SearchRequest struct {
	Q string `json:"q"`
}

type LoadMoreRequest struct{}

type SearchStateRequest struct{}

type ResetSearchRequest struct{}

type SearchStateReply struct {
	Query       string   `json:"query"`
	CurrentPage int32    `json:"current_page"`
	Results     []*Movie `json:"results"`
	IsLoading   bool     `json:"is_loading"`
	IsActive    bool     `json:"is_active"`
	Exhausted   bool     `json:"exhausted"`
}

type GetMovieDetailsRequest struct {
	Id string `json:"id"`
}

type GetMovieDetailsReply struct {
	Movie      *Movie    `json:"movie"`
	IsFavorite bool      `json:"is_favorite"`
	Reviews    []*Review `json:"reviews"`
}

type ListFavoritesRequest struct{}

type ListFavoritesReply struct {
	Items []*Movie `json:"items"`
}

type IsFavoriteRequest struct {
	Id string `json:"id"`
}

type IsFavoriteReply struct {
	IsFavorite bool `json:"is_favorite"`
}

type AddFavoriteRequest struct {
	Id    string `json:"id"`
	Movie *Movie `json:"movie"`
}

type ToggleFavoriteRequest struct {
	Id    string `json:"id"`
	Movie *Movie `json:"movie"`
}

type ToggleFavoriteReply struct {
	IsFavorite bool `json:"is_favorite"`
}

type RemoveFavoriteRequest struct {
	Id string `json:"id"`
}

type ListReviewsRequest struct {
	Id string `json:"id"`
}

type ListReviewsReply struct {
	Items []*Review `json:"items"`
}

type SubmitReviewRequest struct {
	Id     string `json:"id"`
	Text   string `json:"text"`
	Rating int32  `json:"rating"`
}

type SubmitReviewReply struct {
	Review *Review `json:"review"`
}

type ClearReviewsRequest struct {
	Id string `json:"id"`
}

type HealthCheckRequest struct{}

type HealthCheckReply struct {
	Status string `json:"status"`
}
