package interfaces

import (
	"context"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/docsbotai/dashboard/pkg/domain/model/upload"
)

// SessionVerifier is the identity authority. VerifySessionCookie fails with
// errs.TagUnauthenticated for invalid, expired or revoked tokens and with
// errs.TagService when the authority cannot be reached.
type SessionVerifier interface {
	VerifySessionCookie(ctx context.Context, token auth.SessionToken) (*auth.Identity, error)
	CreateSessionCookie(ctx context.Context, idToken auth.IDToken, expiresIn time.Duration) (auth.SessionToken, error)
}

// UserDirectory resolves accounts held by the identity authority. GetUserByEmail
// returns (nil, nil) when no account uses the address.
type UserDirectory interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.User, error)
}

type StorageClient interface {
	SignedURL(ctx context.Context, object string, opts upload.SignOptions) (*upload.SignedURL, error)
	Close(ctx context.Context)
}

// Notifier delivers a message over one channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg notify.Message) error
}
