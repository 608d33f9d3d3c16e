package bot

import (
	"context"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

// Bot is a chatbot owned by a team and trained on the team's sources.
type Bot struct {
	ID          types.BotID     `json:"id" firestore:"id"`
	TeamID      types.TeamID    `json:"teamId" firestore:"teamId"`
	Name        string          `json:"name" firestore:"name"`
	Description string          `json:"description" firestore:"description"`
	Status      types.BotStatus `json:"status" firestore:"status"`
	CreatedBy   types.UserID    `json:"createdBy" firestore:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt" firestore:"updatedAt"`
}

func New(ctx context.Context, teamID types.TeamID, createdBy types.UserID, name, description string) *Bot {
	now := clock.Now(ctx)
	return &Bot{
		ID:          types.NewBotID(),
		TeamID:      teamID,
		Name:        name,
		Description: description,
		Status:      types.BotStatusPending,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (x *Bot) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid bot ID", goerr.T(errs.TagValidation))
	}
	if err := x.TeamID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team ID", goerr.T(errs.TagValidation))
	}
	if x.Name == "" {
		return goerr.New("bot name is required", goerr.T(errs.TagValidation))
	}
	if len([]rune(x.Name)) > maxNameLength {
		return goerr.New("bot name is too long", goerr.T(errs.TagValidation), goerr.V("max", maxNameLength))
	}
	if len([]rune(x.Description)) > maxDescriptionLength {
		return goerr.New("bot description is too long", goerr.T(errs.TagValidation), goerr.V("max", maxDescriptionLength))
	}
	return nil
}
