package usecase

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/utils/logging"
)

// DefaultLandingPath is where authenticated users land when the requested
// redirect target is not allowed.
const DefaultLandingPath = "/app"

var allowedRedirects = map[string]struct{}{
	"/":            {},
	"/login":       {},
	"/register":    {},
	"/app":         {},
	"/app/team":    {},
	"/app/bots":    {},
	"/app/account": {},
}

// SafeRedirect returns redirect when it exactly matches an allowed path and
// DefaultLandingPath otherwise.
func SafeRedirect(redirect string) string {
	if _, ok := allowedRedirects[redirect]; ok {
		return redirect
	}
	return DefaultLandingPath
}

// RedirectIfAuthenticated returns the page an already signed-in visitor of an
// unauthenticated page should be sent to. Any authentication failure, including
// an unavailable authority, yields ok=false so the page renders as usual.
func (uc *UseCases) RedirectIfAuthenticated(ctx context.Context, cookieHeader, redirect string) (string, bool) {
	if _, err := uc.Authenticate(ctx, cookieHeader); err != nil {
		logging.From(ctx).Debug("not redirecting unauthenticated visitor", logging.ErrAttr(err))
		return "", false
	}
	return SafeRedirect(redirect), true
}
