package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/async"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// CreateTeam creates a team owned by the caller.
func (uc *UseCases) CreateTeam(ctx context.Context, id *auth.Identity, name string) (*team.Team, error) {
	name = strings.TrimSpace(name)
	if err := team.ValidateName(name); err != nil {
		return nil, err
	}

	t := team.New(ctx, name, id.UID)
	if err := uc.repository.PutTeam(ctx, t); err != nil {
		return nil, goerr.Wrap(err, "failed to create team", goerr.TV(errs.TeamIDKey, t.ID))
	}

	logging.From(ctx).Info("team created", "team_id", t.ID, "owner", id.UID)
	return t, nil
}

func (uc *UseCases) RenameTeam(ctx context.Context, access *auth.Access, name string) (*team.Team, error) {
	if err := requireManager(access); err != nil {
		return nil, err
	}

	updated, err := access.Team.Rename(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	if err := uc.repository.PutTeam(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to rename team", goerr.TV(errs.TeamIDKey, updated.ID))
	}
	return updated, nil
}

// InviteMember adds the account registered with email to the team and notifies
// it. The notification is sent in the background and its failure does not
// affect the result.
func (uc *UseCases) InviteMember(ctx context.Context, access *auth.Access, email string) (*team.Team, error) {
	if err := requireManager(access); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, goerr.New("email is required", goerr.T(errs.TagInvalidRequest))
	}

	if uc.directory == nil {
		return nil, goerr.New("user directory is not configured", goerr.T(errs.TagService))
	}

	user, err := uc.directory.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up invitee", goerr.TV(errs.TeamIDKey, access.Team.ID))
	}
	if user == nil {
		return nil, goerr.New("no user is registered with the email address",
			goerr.T(errs.TagNotFound),
			goerr.V("email", email))
	}

	updated, err := access.Team.AddMember(ctx, user.UID)
	if err != nil {
		return nil, err
	}

	if err := uc.repository.PutTeam(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to add team member",
			goerr.TV(errs.TeamIDKey, updated.ID),
			goerr.TV(errs.UserIDKey, user.UID))
	}

	logging.From(ctx).Info("team member added", "team_id", updated.ID, "uid", user.UID, "by", access.UserID)

	msg := invitationMessage(updated, user)
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.notifier.Notify(ctx, msg)
	})

	return updated, nil
}

func invitationMessage(t *team.Team, user *auth.User) notify.Message {
	name := user.DisplayName
	if name == "" {
		name = user.Email
	}
	return notify.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("You have been added to %s on DocsBot", t.Name),
		Body: fmt.Sprintf("Hi %s,\n\nYou are now a member of the team %q. Sign in to DocsBot to start working with its bots.\n",
			name, t.Name),
	}
}

func (uc *UseCases) RemoveMember(ctx context.Context, access *auth.Access, uid types.UserID) (*team.Team, error) {
	if err := requireManager(access); err != nil {
		return nil, err
	}

	updated, err := access.Team.RemoveMember(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := uc.repository.PutTeam(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to remove team member",
			goerr.TV(errs.TeamIDKey, updated.ID),
			goerr.TV(errs.UserIDKey, uid))
	}

	logging.From(ctx).Info("team member removed", "team_id", updated.ID, "uid", uid, "by", access.UserID)
	return updated, nil
}
