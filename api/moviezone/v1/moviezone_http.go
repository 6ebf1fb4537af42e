package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationMovieZoneSearch          = "/moviezone.v1.MovieZone/Search"
	OperationMovieZoneLoadMore        = "/moviezone.v1.MovieZone/LoadMore"
	OperationMovieZoneSearchState     = "/moviezone.v1.MovieZone/SearchState"
	OperationMovieZoneResetSearch     = "/moviezone.v1.MovieZone/ResetSearch"
	OperationMovieZoneGetMovieDetails = "/moviezone.v1.MovieZone/GetMovieDetails"
	OperationMovieZoneListFavorites   = "/moviezone.v1.MovieZone/ListFavorites"
	OperationMovieZoneIsFavorite      = "/moviezone.v1.MovieZone/IsFavorite"
	OperationMovieZoneAddFavorite     = "/moviezone.v1.MovieZone/AddFavorite"
	OperationMovieZoneToggleFavorite  = "/moviezone.v1.MovieZone/ToggleFavorite"
	OperationMovieZoneRemoveFavorite  = "/moviezone.v1.MovieZone/RemoveFavorite"
	OperationMovieZoneListReviews     = "/moviezone.v1.MovieZone/ListReviews"
	OperationMovieZoneSubmitReview    = "/moviezone.v1.MovieZone/SubmitReview"
	OperationMovieZoneClearReviews    = "/moviezone.v1.MovieZone/ClearReviews"
	OperationMovieZoneHealthCheck     = "/moviezone.v1.MovieZone/HealthCheck"
)

// MovieZoneHTTPServer is the server API bound by RegisterMovieZoneHTTPServer.
type MovieZoneHTTPServer interface {
	Search(context.Context, *SearchRequest) (*SearchStateReply, error)
	LoadMore(context.Context, *LoadMoreRequest) (*SearchStateReply, error)
	SearchState(context.Context, *SearchStateRequest) (*SearchStateReply, error)
	ResetSearch(context.Context, *ResetSearchRequest) (*SearchStateReply, error)
	GetMovieDetails(context.Context, *GetMovieDetailsRequest) (*GetMovieDetailsReply, error)
	ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesReply, error)
	IsFavorite(context.Context, *IsFavoriteRequest) (*IsFavoriteReply, error)
	AddFavorite(context.Context, *AddFavoriteRequest) (*Empty, error)
	ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ToggleFavoriteReply, error)
	RemoveFavorite(context.Context, *RemoveFavoriteRequest) (*Empty, error)
	ListReviews(context.Context, *ListReviewsRequest) (*ListReviewsReply, error)
	SubmitReview(context.Context, *SubmitReviewRequest) (*SubmitReviewReply, error)
	ClearReviews(context.Context, *ClearReviewsRequest) (*Empty, error)
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckReply, error)
}

func RegisterMovieZoneHTTPServer(s *http.Server, srv MovieZoneHTTPServer) {
	r := s.Route("/")
	r.GET("/v1/search", _MovieZone_Search_HTTP_Handler(srv))
	r.POST("/v1/search/more", _MovieZone_LoadMore_HTTP_Handler(srv))
	r.GET("/v1/search/state", _MovieZone_SearchState_HTTP_Handler(srv))
	r.DELETE("/v1/search", _MovieZone_ResetSearch_HTTP_Handler(srv))
	r.GET("/v1/movies/{id}", _MovieZone_GetMovieDetails_HTTP_Handler(srv))
	r.GET("/v1/favorites", _MovieZone_ListFavorites_HTTP_Handler(srv))
	r.GET("/v1/favorites/{id}", _MovieZone_IsFavorite_HTTP_Handler(srv))
	r.PUT("/v1/favorites/{id}", _MovieZone_AddFavorite_HTTP_Handler(srv))
	r.POST("/v1/favorites/{id}/toggle", _MovieZone_ToggleFavorite_HTTP_Handler(srv))
	r.DELETE("/v1/favorites/{id}", _MovieZone_RemoveFavorite_HTTP_Handler(srv))
	r.GET("/v1/movies/{id}/reviews", _MovieZone_ListReviews_HTTP_Handler(srv))
	r.POST("/v1/movies/{id}/reviews", _MovieZone_SubmitReview_HTTP_Handler(srv))
	r.DELETE("/v1/movies/{id}/reviews", _MovieZone_ClearReviews_HTTP_Handler(srv))
	r.GET("/healthz", _MovieZone_HealthCheck_HTTP_Handler(srv))
}

func _MovieZone_Search_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SearchRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneSearch)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Search(ctx, req.(*SearchRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SearchStateReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_LoadMore_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in LoadMoreRequest
		http.SetOperation(ctx, OperationMovieZoneLoadMore)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.LoadMore(ctx, req.(*LoadMoreRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SearchStateReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_SearchState_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SearchStateRequest
		http.SetOperation(ctx, OperationMovieZoneSearchState)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SearchState(ctx, req.(*SearchStateRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SearchStateReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_ResetSearch_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ResetSearchRequest
		http.SetOperation(ctx, OperationMovieZoneResetSearch)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ResetSearch(ctx, req.(*ResetSearchRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SearchStateReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_GetMovieDetails_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetMovieDetailsRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneGetMovieDetails)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetMovieDetails(ctx, req.(*GetMovieDetailsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*GetMovieDetailsReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_ListFavorites_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListFavoritesRequest
		http.SetOperation(ctx, OperationMovieZoneListFavorites)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListFavorites(ctx, req.(*ListFavoritesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListFavoritesReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_IsFavorite_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in IsFavoriteRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneIsFavorite)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.IsFavorite(ctx, req.(*IsFavoriteRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*IsFavoriteReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_AddFavorite_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in AddFavoriteRequest
		if err := ctx.Bind(&in.Movie); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneAddFavorite)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.AddFavorite(ctx, req.(*AddFavoriteRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Empty)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_ToggleFavorite_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ToggleFavoriteRequest
		if err := ctx.Bind(&in.Movie); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneToggleFavorite)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ToggleFavorite(ctx, req.(*ToggleFavoriteRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ToggleFavoriteReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_RemoveFavorite_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in RemoveFavoriteRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneRemoveFavorite)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.RemoveFavorite(ctx, req.(*RemoveFavoriteRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Empty)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_ListReviews_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListReviewsRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneListReviews)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListReviews(ctx, req.(*ListReviewsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListReviewsReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_SubmitReview_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SubmitReviewRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneSubmitReview)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SubmitReview(ctx, req.(*SubmitReviewRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SubmitReviewReply)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_ClearReviews_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ClearReviewsRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieZoneClearReviews)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ClearReviews(ctx, req.(*ClearReviewsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Empty)
		return ctx.Result(200, reply)
	}
}

func _MovieZone_HealthCheck_HTTP_Handler(srv MovieZoneHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HealthCheckRequest
		http.SetOperation(ctx, OperationMovieZoneHealthCheck)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.HealthCheck(ctx, req.(*HealthCheckRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*HealthCheckReply)
		return ctx.Result(200, reply)
	}
}
