package interfaces

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/model/upload"
	"github.com/docsbotai/dashboard/pkg/domain/types"
)

type SessionUsecases interface {
	Authenticate(ctx context.Context, cookieHeader string) (*auth.Identity, error)
	CreateSession(ctx context.Context, idToken auth.IDToken) (auth.SessionToken, error)
	RedirectIfAuthenticated(ctx context.Context, cookieHeader, redirect string) (string, bool)
}

type TeamUsecases interface {
	TeamAccess(ctx context.Context, cookieHeader string, teamID types.TeamID) (*auth.Access, error)
	TeamAccessFor(ctx context.Context, id *auth.Identity, teamID types.TeamID) (*auth.Access, error)
	CreateTeam(ctx context.Context, id *auth.Identity, name string) (*team.Team, error)
	RenameTeam(ctx context.Context, access *auth.Access, name string) (*team.Team, error)
	InviteMember(ctx context.Context, access *auth.Access, email string) (*team.Team, error)
	RemoveMember(ctx context.Context, access *auth.Access, uid types.UserID) (*team.Team, error)
}

type BotUsecases interface {
	ListBots(ctx context.Context, access *auth.Access) ([]*bot.Bot, error)
	GetBot(ctx context.Context, access *auth.Access, botID types.BotID) (*bot.Bot, error)
	CreateBot(ctx context.Context, access *auth.Access, name, description string) (*bot.Bot, error)
	DeleteBot(ctx context.Context, access *auth.Access, botID types.BotID) error
	IssueSourceUploadURL(ctx context.Context, access *auth.Access, botID types.BotID, fileName, contentType string) (*upload.SignedURL, error)
}
