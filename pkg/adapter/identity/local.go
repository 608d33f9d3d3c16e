package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/clock"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

const (
	localIssuer   = "docsbot-local"
	localAudience = "docsbot-dashboard"

	claimEmail    = "email"
	claimTokenUse = "tokenUse"

	tokenUseID      = "id"
	tokenUseSession = "session"

	// IDTokenDuration is the lifetime of ID tokens issued by Local.
	IDTokenDuration = time.Hour
)

// Local is a self-contained identity authority for development and tests. It
// signs ID and session tokens with an HMAC secret and keeps a user registry in
// memory.
type Local struct {
	key []byte

	mu    sync.RWMutex
	users map[string]*auth.User
}

var (
	_ interfaces.SessionVerifier = &Local{}
	_ interfaces.UserDirectory   = &Local{}
)

func NewLocal(secret []byte, users ...*auth.User) (*Local, error) {
	if len(secret) < 32 {
		return nil, goerr.New("local identity secret must be at least 32 bytes",
			goerr.V("length", len(secret)))
	}

	l := &Local{
		key:   secret,
		users: make(map[string]*auth.User),
	}
	for _, u := range users {
		l.AddUser(u)
	}
	return l, nil
}

// AddUser registers u so it can be found by GetUserByEmail.
func (x *Local) AddUser(u *auth.User) {
	x.mu.Lock()
	defer x.mu.Unlock()

	c := *u
	x.users[strings.ToLower(u.Email)] = &c
}

func (x *Local) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	u, ok := x.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

// IssueIDToken signs an ID token as a sign-in provider would.
func (x *Local) IssueIDToken(ctx context.Context, id *auth.Identity) (auth.IDToken, error) {
	now := clock.Now(ctx)
	signed, err := x.sign(id, tokenUseID, now, now.Add(IDTokenDuration))
	if err != nil {
		return "", err
	}
	return auth.IDToken(signed), nil
}

// IssueSessionToken signs a session token directly, skipping the ID token exchange.
func (x *Local) IssueSessionToken(ctx context.Context, id *auth.Identity, expiresIn time.Duration) (auth.SessionToken, error) {
	now := clock.Now(ctx)
	signed, err := x.sign(id, tokenUseSession, now, now.Add(expiresIn))
	if err != nil {
		return "", err
	}
	return auth.SessionToken(signed), nil
}

func (x *Local) CreateSessionCookie(ctx context.Context, idToken auth.IDToken, expiresIn time.Duration) (auth.SessionToken, error) {
	id, err := x.parse(ctx, string(idToken), tokenUseID)
	if err != nil {
		return "", goerr.Wrap(err, "ID token rejected", goerr.T(errs.TagUnauthenticated))
	}
	return x.IssueSessionToken(ctx, id, expiresIn)
}

func (x *Local) VerifySessionCookie(ctx context.Context, token auth.SessionToken) (*auth.Identity, error) {
	id, err := x.parse(ctx, string(token), tokenUseSession)
	if err != nil {
		return nil, goerr.Wrap(err, "session cookie rejected", goerr.T(errs.TagUnauthenticated))
	}
	return id, nil
}

func (x *Local) sign(id *auth.Identity, use string, issuedAt, expiresAt time.Time) (string, error) {
	if err := id.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid identity", goerr.T(errs.TagValidation))
	}

	token := jwt.New()
	for k, v := range map[string]any{
		jwt.IssuerKey:        localIssuer,
		jwt.AudienceKey:      localAudience,
		jwt.SubjectKey:       id.UID.String(),
		jwt.IssuedAtKey:      issuedAt,
		jwt.ExpirationKey:    expiresAt,
		claimEmail:           id.Email,
		claimTokenUse:        use,
		auth.SuperAdminClaim: id.SuperAdmin,
	} {
		if err := token.Set(k, v); err != nil {
			return "", goerr.Wrap(err, "failed to set token claim", goerr.V("claim", k))
		}
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, x.key))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token")
	}
	return string(signed), nil
}

func (x *Local) parse(ctx context.Context, raw, use string) (*auth.Identity, error) {
	if raw == "" {
		return nil, goerr.New("empty token")
	}

	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, x.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(localIssuer),
		jwt.WithAudience(localAudience),
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return clock.Now(ctx) })),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse token")
	}

	if v, ok := token.Get(claimTokenUse); !ok || v != use {
		return nil, goerr.New("unexpected token use", goerr.V("want", use), goerr.V("got", v))
	}

	id := &auth.Identity{
		UID:       types.UserID(token.Subject()),
		ExpiresAt: token.Expiration(),
	}
	if v, ok := token.Get(claimEmail); ok {
		id.Email, _ = v.(string)
	}
	if v, ok := token.Get(auth.SuperAdminClaim); ok {
		id.SuperAdmin, _ = v.(bool)
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}

// ParseUsers parses "uid:email" pairs separated by commas.
func ParseUsers(s string) ([]*auth.User, error) {
	var users []*auth.User
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		uid, email, ok := strings.Cut(entry, ":")
		if !ok || uid == "" || email == "" {
			return nil, goerr.New("invalid user entry, expected uid:email",
				goerr.T(errs.TagValidation),
				goerr.V("entry", entry))
		}
		users = append(users, &auth.User{
			UID:   types.UserID(uid),
			Email: email,
		})
	}
	return users, nil
}
