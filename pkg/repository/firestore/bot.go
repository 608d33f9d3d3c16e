package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Firestore) ListBots(ctx context.Context, teamID types.TeamID) ([]*bot.Bot, error) {
	iter := r.botCollection(teamID.String()).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var bots []*bot.Bot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to iterate bots",
				goerr.TV(errs.TeamIDKey, teamID),
				goerr.T(errs.TagDatabase))
		}

		var b bot.Bot
		if err := doc.DataTo(&b); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to bot",
				goerr.TV(errs.TeamIDKey, teamID),
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagInternal))
		}
		b.ID = types.BotID(doc.Ref.ID)
		b.TeamID = teamID
		bots = append(bots, &b)
	}

	return bots, nil
}

func (r *Firestore) GetBot(ctx context.Context, teamID types.TeamID, botID types.BotID) (*bot.Bot, error) {
	if err := botID.Validate(); err != nil {
		return nil, nil
	}

	doc, err := r.botCollection(teamID.String()).Doc(botID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get bot",
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.TV(errs.BotIDKey, botID),
			goerr.T(errs.TagDatabase))
	}

	var b bot.Bot
	if err := doc.DataTo(&b); err != nil {
		return nil, r.eb.Wrap(err, "failed to convert data to bot",
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.TV(errs.BotIDKey, botID),
			goerr.T(errs.TagInternal))
	}
	b.ID = botID
	b.TeamID = teamID
	return &b, nil
}

func (r *Firestore) PutBot(ctx context.Context, b *bot.Bot) error {
	if err := b.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid bot",
			goerr.TV(errs.TeamIDKey, b.TeamID),
			goerr.TV(errs.BotIDKey, b.ID))
	}

	if _, err := r.botCollection(b.TeamID.String()).Doc(b.ID.String()).Set(ctx, b); err != nil {
		return r.eb.Wrap(err, "failed to put bot",
			goerr.TV(errs.TeamIDKey, b.TeamID),
			goerr.TV(errs.BotIDKey, b.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) DeleteBot(ctx context.Context, teamID types.TeamID, botID types.BotID) error {
	if _, err := r.botCollection(teamID.String()).Doc(botID.String()).Delete(ctx); err != nil {
		return r.eb.Wrap(err, "failed to delete bot",
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.TV(errs.BotIDKey, botID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}
