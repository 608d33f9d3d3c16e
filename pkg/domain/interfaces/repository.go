package interfaces

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
)

// Repository is the data store. Get methods return (nil, nil) when the record is absent.
type Repository interface {
	GetTeam(ctx context.Context, teamID types.TeamID) (*team.Team, error)
	PutTeam(ctx context.Context, t *team.Team) error

	ListBots(ctx context.Context, teamID types.TeamID) ([]*bot.Bot, error)
	GetBot(ctx context.Context, teamID types.TeamID, botID types.BotID) (*bot.Bot, error)
	PutBot(ctx context.Context, b *bot.Bot) error
	DeleteBot(ctx context.Context, teamID types.TeamID, botID types.BotID) error
}
