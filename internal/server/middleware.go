package server

import (
	"context"

	"moviezone/internal/service"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
)

// SessionHeader names the header carrying the client's search session id.
const SessionHeader = "X-Session-Id"

// SessionMiddleware extracts X-Session-Id so each client pages through its own search
func SessionMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}

			if id := tr.RequestHeader().Get(SessionHeader); id != "" {
				ctx = service.NewSessionContext(ctx, id)
			}

			return handler(ctx, req)
		}
	}
}
