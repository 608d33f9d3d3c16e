package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				panicErr := goerr.New("panic recovered",
					goerr.V("panic", fmt.Sprintf("%v", err)),
					goerr.V("stack", string(debug.Stack())),
					goerr.V("method", r.Method),
					goerr.V("path", r.URL.Path),
				)

				handleError(w, r, panicErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// cookieHeader joins all Cookie headers of r. HTTP/2 clients may send cookies
// in separate header fields.
func cookieHeader(r *http.Request) string {
	return strings.Join(r.Header.Values("Cookie"), "; ")
}

// sessionAuth rejects requests without a valid session and stores the verified
// identity in the request context.
func sessionAuth(uc interfaces.SessionUsecases) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uc.Authenticate(r.Context(), cookieHeader(r))
			if err != nil {
				handleError(w, r, err)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), id)
			ctx = logging.With(ctx, logging.From(ctx).With("uid", id.UID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// teamAccess authorizes the identity set by sessionAuth for the {teamID} route
// parameter and stores the result in the request context.
func teamAccess(uc interfaces.TeamUsecases) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.IdentityFromContext(r.Context())
			if err != nil {
				handleError(w, r, goerr.Wrap(errs.ErrNoSessionCookie, "identity is not resolved", goerr.T(errs.TagUnauthenticated)))
				return
			}

			teamID := types.TeamID(chi.URLParam(r, "teamID"))
			access, err := uc.TeamAccessFor(r.Context(), id, teamID)
			if err != nil {
				handleError(w, r, err)
				return
			}

			ctx := auth.ContextWithAccess(r.Context(), access)
			ctx = logging.With(ctx, logging.From(ctx).With("team_id", teamID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// accessFrom returns the access stored by teamAccess. A missing value is a
// routing mistake and reported as an internal error.
func accessFrom(r *http.Request) (*auth.Access, error) {
	access, err := auth.AccessFromContext(r.Context())
	if err != nil {
		return nil, goerr.Wrap(err, "team access middleware is not applied", goerr.T(errs.TagInternal))
	}
	return access, nil
}
