package server

import (
	v1 "moviezone/api/moviezone/v1"
	"moviezone/internal/conf"
	"moviezone/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, svc *service.MovieZoneService, logger log.Logger) *khttp.Server {
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			SessionMiddleware(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, khttp.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, khttp.Address(c.Http.Addr))
		}
		if c.Http.Timeout != nil {
			opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
		}
	}
	srv := khttp.NewServer(opts...)
	v1.RegisterMovieZoneHTTPServer(srv, svc)
	return srv
}
