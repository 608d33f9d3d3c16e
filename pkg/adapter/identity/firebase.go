package identity

import (
	"context"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// authClient is the subset of the Firebase Auth client used by Firebase.
type authClient interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*fbauth.Token, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*fbauth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*fbauth.UserRecord, error)
}

// Firebase verifies session cookies against Firebase Authentication. The Auth
// client is created once by NewFirebase and shared by all requests.
type Firebase struct {
	projectID    string
	checkRevoked bool
	clientOpts   []option.ClientOption
	client       authClient
}

var (
	_ interfaces.SessionVerifier = &Firebase{}
	_ interfaces.UserDirectory   = &Firebase{}
)

type FirebaseOption func(*Firebase)

// WithCheckRevoked makes verification also reject revoked sessions and disabled
// users. It costs one extra call to the authority per verification.
func WithCheckRevoked(enabled bool) FirebaseOption {
	return func(f *Firebase) {
		f.checkRevoked = enabled
	}
}

func WithClientOptions(opts ...option.ClientOption) FirebaseOption {
	return func(f *Firebase) {
		f.clientOpts = append(f.clientOpts, opts...)
	}
}

// NewFirebase initializes the Firebase app and its Auth client. It is called
// once at startup; a failure here must stop the process.
func NewFirebase(ctx context.Context, projectID string, opts ...FirebaseOption) (*Firebase, error) {
	f := &Firebase{
		projectID: projectID,
	}
	for _, opt := range opts {
		opt(f)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, f.clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize firebase app",
			goerr.T(errs.TagService),
			goerr.V("project_id", projectID))
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize firebase auth client",
			goerr.T(errs.TagService),
			goerr.V("project_id", projectID))
	}
	f.client = client

	return f, nil
}

func (x *Firebase) VerifySessionCookie(ctx context.Context, token auth.SessionToken) (*auth.Identity, error) {
	var (
		decoded *fbauth.Token
		err     error
	)
	if x.checkRevoked {
		decoded, err = x.client.VerifySessionCookieAndCheckRevoked(ctx, string(token))
	} else {
		decoded, err = x.client.VerifySessionCookie(ctx, string(token))
	}
	if err != nil {
		return nil, classifyVerifyError(err)
	}

	id := identityFromToken(decoded)
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "session cookie carries no usable identity",
			goerr.T(errs.TagUnauthenticated))
	}

	logging.From(ctx).Debug("session cookie verified", "uid", id.UID)
	return id, nil
}

// classifyVerifyError separates credentials the authority rejected from
// failures to reach or use the authority.
func classifyVerifyError(err error) error {
	switch {
	case fbauth.IsSessionCookieInvalid(err),
		fbauth.IsSessionCookieExpired(err),
		fbauth.IsSessionCookieRevoked(err),
		fbauth.IsUserDisabled(err),
		fbauth.IsUserNotFound(err):
		return goerr.Wrap(err, "session cookie rejected", goerr.T(errs.TagUnauthenticated))

	case fbauth.IsCertificateFetchFailed(err):
		return goerr.Wrap(err, "failed to fetch session cookie certificates", goerr.T(errs.TagService))

	default:
		return goerr.Wrap(err, "failed to verify session cookie", goerr.T(errs.TagService))
	}
}

func identityFromToken(token *fbauth.Token) *auth.Identity {
	id := &auth.Identity{
		UID:       types.UserID(token.UID),
		ExpiresAt: time.Unix(token.Expires, 0),
	}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	if superAdmin, ok := token.Claims[auth.SuperAdminClaim].(bool); ok {
		id.SuperAdmin = superAdmin
	}
	return id
}

func (x *Firebase) CreateSessionCookie(ctx context.Context, idToken auth.IDToken, expiresIn time.Duration) (auth.SessionToken, error) {
	cookie, err := x.client.SessionCookie(ctx, string(idToken), expiresIn)
	if err != nil {
		if fbauth.IsIDTokenInvalid(err) || fbauth.IsIDTokenExpired(err) || errorutils.IsInvalidArgument(err) {
			return "", goerr.Wrap(err, "ID token rejected", goerr.T(errs.TagUnauthenticated))
		}
		return "", goerr.Wrap(err, "failed to create session cookie", goerr.T(errs.TagService))
	}

	return auth.SessionToken(cookie), nil
}

func (x *Firebase) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	record, err := x.client.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to look up user",
			goerr.T(errs.TagService),
			goerr.V("email", email))
	}

	return &auth.User{
		UID:         types.UserID(record.UID),
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}
