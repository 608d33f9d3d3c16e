package usecase

import (
	"context"
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// sessionTokenFromHeader extracts the session token from a raw Cookie header.
// Malformed cookie pairs are skipped.
func sessionTokenFromHeader(cookieHeader string) (auth.SessionToken, error) {
	if cookieHeader == "" {
		return "", goerr.Wrap(errs.ErrNoSessionCookie, "no cookie header", goerr.T(errs.TagUnauthenticated))
	}

	req := http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	cookie, err := req.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", goerr.Wrap(errs.ErrNoSessionCookie, "session cookie not found", goerr.T(errs.TagUnauthenticated))
	}

	return auth.SessionToken(cookie.Value), nil
}

// Authenticate resolves the caller's identity from the Cookie header. Verifier
// failures are returned as they are: errs.TagUnauthenticated for rejected
// tokens and errs.TagService when the authority is unavailable. It never retries.
func (uc *UseCases) Authenticate(ctx context.Context, cookieHeader string) (*auth.Identity, error) {
	token, err := sessionTokenFromHeader(cookieHeader)
	if err != nil {
		return nil, err
	}

	if uc.verifier == nil {
		return nil, goerr.New("session verifier is not configured", goerr.T(errs.TagService))
	}

	id, err := uc.verifier.VerifySessionCookie(ctx, token)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("authenticated", "uid", id.UID, "super_admin", id.SuperAdmin)
	return id, nil
}

// CreateSession exchanges an ID token from the sign-in flow for a session token
// valid for auth.SessionDuration.
func (uc *UseCases) CreateSession(ctx context.Context, idToken auth.IDToken) (auth.SessionToken, error) {
	if idToken == "" {
		return "", goerr.New("idToken is required", goerr.T(errs.TagInvalidRequest))
	}

	if uc.verifier == nil {
		return "", goerr.New("session verifier is not configured", goerr.T(errs.TagService))
	}

	token, err := uc.verifier.CreateSessionCookie(ctx, idToken, auth.SessionDuration)
	if err != nil {
		return "", err
	}

	return token, nil
}
