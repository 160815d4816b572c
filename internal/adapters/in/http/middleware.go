package http

import (
	"net/http"
	"strings"

	"ordertrack/internal/core/application/access"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the resolved actor.
const actorContextKey = "ordertrack.actor"

// authRequired resolves the Bearer token into an Actor and stores it in
// the request context. Resolution failures end the request with 401;
// handlers behind this middleware can rely on actorFrom returning a
// valid actor.
func (s *Server) authRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		actor, err := s.resolver.Resolve(ctx.Request().Context(), bearerToken(ctx.Request()))
		if err != nil {
			return s.respondError(ctx, err)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func actorFrom(ctx echo.Context) access.Actor {
	actor, _ := ctx.Get(actorContextKey).(access.Actor)
	return actor
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
