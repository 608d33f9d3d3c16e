package usecase

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// TeamAccess authenticates the caller from the Cookie header and checks that
// they may access teamID.
func (uc *UseCases) TeamAccess(ctx context.Context, cookieHeader string, teamID types.TeamID) (*auth.Access, error) {
	id, err := uc.Authenticate(ctx, cookieHeader)
	if err != nil {
		return nil, err
	}
	return uc.TeamAccessFor(ctx, id, teamID)
}

// TeamAccessFor checks that an already verified identity may access teamID.
// Members and super admins are allowed. A team that does not exist is reported
// as errs.TagForbidden so callers cannot probe for team IDs. The team is read
// on every call and never cached.
func (uc *UseCases) TeamAccessFor(ctx context.Context, id *auth.Identity, teamID types.TeamID) (*auth.Access, error) {
	if id == nil {
		return nil, goerr.Wrap(errs.ErrNoSessionCookie, "no identity", goerr.T(errs.TagUnauthenticated))
	}

	t, err := uc.repository.GetTeam(ctx, teamID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load team",
			goerr.T(errs.TagService),
			goerr.TV(errs.TeamIDKey, teamID))
	}
	if t == nil {
		return nil, goerr.Wrap(errs.ErrNoTeamAccess, "team not found",
			goerr.T(errs.TagForbidden),
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.TV(errs.UserIDKey, id.UID))
	}

	if !t.HasMember(id.UID) && !id.SuperAdmin {
		return nil, goerr.Wrap(errs.ErrNoTeamAccess, "not a team member",
			goerr.T(errs.TagForbidden),
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.TV(errs.UserIDKey, id.UID))
	}

	return &auth.Access{
		UserID:     id.UID,
		SuperAdmin: id.SuperAdmin,
		Team:       t,
	}, nil
}

func requireManager(access *auth.Access) error {
	if !access.CanManage() {
		return goerr.New("only the team owner can perform this action",
			goerr.T(errs.TagForbidden),
			goerr.TV(errs.TeamIDKey, access.Team.ID),
			goerr.TV(errs.UserIDKey, access.UserID))
	}
	return nil
}
