package usecase

import (
	"context"
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/upload"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/clock"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const defaultSourceContentType = "application/octet-stream"

func (uc *UseCases) ListBots(ctx context.Context, access *auth.Access) ([]*bot.Bot, error) {
	bots, err := uc.repository.ListBots(ctx, access.Team.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bots", goerr.TV(errs.TeamIDKey, access.Team.ID))
	}
	if bots == nil {
		bots = []*bot.Bot{}
	}
	return bots, nil
}

func (uc *UseCases) GetBot(ctx context.Context, access *auth.Access, botID types.BotID) (*bot.Bot, error) {
	b, err := uc.repository.GetBot(ctx, access.Team.ID, botID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bot",
			goerr.TV(errs.TeamIDKey, access.Team.ID),
			goerr.TV(errs.BotIDKey, botID))
	}
	if b == nil {
		return nil, goerr.New("bot not found",
			goerr.T(errs.TagNotFound),
			goerr.TV(errs.TeamIDKey, access.Team.ID),
			goerr.TV(errs.BotIDKey, botID))
	}
	return b, nil
}

func (uc *UseCases) CreateBot(ctx context.Context, access *auth.Access, name, description string) (*bot.Bot, error) {
	b := bot.New(ctx, access.Team.ID, access.UserID, name, description)
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repository.PutBot(ctx, b); err != nil {
		return nil, goerr.Wrap(err, "failed to create bot",
			goerr.TV(errs.TeamIDKey, access.Team.ID),
			goerr.TV(errs.BotIDKey, b.ID))
	}

	logging.From(ctx).Info("bot created", "team_id", b.TeamID, "bot_id", b.ID, "by", access.UserID)
	return b, nil
}

func (uc *UseCases) DeleteBot(ctx context.Context, access *auth.Access, botID types.BotID) error {
	if _, err := uc.GetBot(ctx, access, botID); err != nil {
		return err
	}

	if err := uc.repository.DeleteBot(ctx, access.Team.ID, botID); err != nil {
		return goerr.Wrap(err, "failed to delete bot",
			goerr.TV(errs.TeamIDKey, access.Team.ID),
			goerr.TV(errs.BotIDKey, botID))
	}

	logging.From(ctx).Info("bot deleted", "team_id", access.Team.ID, "bot_id", botID, "by", access.UserID)
	return nil
}

// IssueSourceUploadURL returns a signed URL the browser uses to PUT a source
// file for the bot directly into object storage. The URL expires after
// upload.URLTTL.
func (uc *UseCases) IssueSourceUploadURL(ctx context.Context, access *auth.Access, botID types.BotID, fileName, contentType string) (*upload.SignedURL, error) {
	b, err := uc.GetBot(ctx, access, botID)
	if err != nil {
		return nil, err
	}

	object, err := upload.SourceObject(b.TeamID, b.ID, fileName)
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = defaultSourceContentType
	}

	signed, err := uc.storageClient.SignedURL(ctx, object, upload.SignOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     clock.Now(ctx).Add(upload.URLTTL),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to issue upload URL",
			goerr.TV(errs.TeamIDKey, b.TeamID),
			goerr.TV(errs.BotIDKey, b.ID),
			goerr.TV(errs.ObjectKey, object))
	}

	logging.From(ctx).Info("source upload URL issued", "bot_id", b.ID, "object", signed.Object)
	return signed, nil
}
