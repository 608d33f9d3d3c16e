package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/docsbotai/dashboard/pkg/adapter/identity"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/repository"
	"github.com/docsbotai/dashboard/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type testEnv struct {
	uc    *usecase.UseCases
	repo  *repository.Memory
	local *identity.Local
	sent  chan notify.Message
}

type chanNotifier struct {
	sent chan notify.Message
}

func (x *chanNotifier) Name() string { return "test" }

func (x *chanNotifier) Notify(ctx context.Context, msg notify.Message) error {
	x.sent <- msg
	return nil
}

// brokenNotifier fails every delivery, by error or by panic, and reports each
// attempt on called.
type brokenNotifier struct {
	panics bool
	called chan notify.Message
}

func (x *brokenNotifier) Name() string { return "broken" }

func (x *brokenNotifier) Notify(ctx context.Context, msg notify.Message) error {
	x.called <- msg
	if x.panics {
		panic("notifier crashed")
	}
	return goerr.New("smtp unavailable", goerr.T(errs.TagService))
}

func newTestEnv(t *testing.T, opts ...usecase.Option) *testEnv {
	t.Helper()

	local, err := identity.NewLocal(testSecret)
	gt.NoError(t, err).Required()

	env := &testEnv{
		repo:  repository.NewMemory(),
		local: local,
		sent:  make(chan notify.Message, 10),
	}

	base := []usecase.Option{
		usecase.WithRepository(env.repo),
		usecase.WithSessionVerifier(local),
		usecase.WithUserDirectory(local),
		usecase.WithNotifier(&chanNotifier{sent: env.sent}),
	}
	env.uc = usecase.New(append(base, opts...)...)
	return env
}

// cookieFor returns a Cookie header carrying a valid session for uid.
func (x *testEnv) cookieFor(t *testing.T, uid types.UserID, superAdmin bool) string {
	t.Helper()
	token, err := x.local.IssueSessionToken(context.Background(), &auth.Identity{
		UID:        uid,
		Email:      string(uid) + "@example.com",
		SuperAdmin: superAdmin,
	}, time.Hour)
	gt.NoError(t, err).Required()
	return auth.SessionCookieName + "=" + token.String()
}

func (x *testEnv) putTeam(t *testing.T, owner types.UserID, members ...types.UserID) *team.Team {
	t.Helper()
	ctx := context.Background()

	tm := team.New(ctx, "Acme", owner)
	for _, m := range members {
		var err error
		tm, err = tm.AddMember(ctx, m)
		gt.NoError(t, err).Required()
	}
	gt.NoError(t, x.repo.PutTeam(ctx, tm)).Required()
	return tm
}

func (x *testEnv) access(t *testing.T, uid types.UserID, teamID types.TeamID) *auth.Access {
	t.Helper()
	access, err := x.uc.TeamAccessFor(context.Background(), &auth.Identity{UID: uid}, teamID)
	gt.NoError(t, err).Required()
	return access
}

func (x *testEnv) waitNotification(t *testing.T) notify.Message {
	t.Helper()
	select {
	case msg := <-x.sent:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("notification was not sent")
		return notify.Message{}
	}
}

// failingVerifier reports the identity authority as unreachable.
type failingVerifier struct{}

func (failingVerifier) VerifySessionCookie(ctx context.Context, token auth.SessionToken) (*auth.Identity, error) {
	return nil, goerr.New("certificate fetch failed", goerr.T(errs.TagService))
}

func (failingVerifier) CreateSessionCookie(ctx context.Context, idToken auth.IDToken, expiresIn time.Duration) (auth.SessionToken, error) {
	return "", goerr.New("certificate fetch failed", goerr.T(errs.TagService))
}

// failingRepository fails every operation with a database error.
type failingRepository struct {
	mu    sync.Mutex
	calls int
}

var _ interfaces.Repository = &failingRepository{}

func (x *failingRepository) fail() error {
	x.mu.Lock()
	x.calls++
	x.mu.Unlock()
	return goerr.New("database unavailable", goerr.T(errs.TagDatabase))
}

func (x *failingRepository) GetTeam(ctx context.Context, teamID types.TeamID) (*team.Team, error) {
	return nil, x.fail()
}

func (x *failingRepository) PutTeam(ctx context.Context, t *team.Team) error {
	return x.fail()
}

func (x *failingRepository) ListBots(ctx context.Context, teamID types.TeamID) ([]*bot.Bot, error) {
	return nil, x.fail()
}

func (x *failingRepository) GetBot(ctx context.Context, teamID types.TeamID, botID types.BotID) (*bot.Bot, error) {
	return nil, x.fail()
}

func (x *failingRepository) PutBot(ctx context.Context, b *bot.Bot) error {
	return x.fail()
}

func (x *failingRepository) DeleteBot(ctx context.Context, teamID types.TeamID, botID types.BotID) error {
	return x.fail()
}
