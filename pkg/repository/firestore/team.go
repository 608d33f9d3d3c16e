package firestore

import (
	"context"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// teamRecord is the stored form of team.Team. Roles are keyed by plain strings
// because the document decoder only builds maps with string keys.
type teamRecord struct {
	Name      string            `firestore:"name"`
	Roles     map[string]string `firestore:"roles"`
	CreatedAt time.Time         `firestore:"createdAt"`
	UpdatedAt time.Time         `firestore:"updatedAt"`
}

func newTeamRecord(t *team.Team) *teamRecord {
	roles := make(map[string]string, len(t.Roles))
	for uid, role := range t.Roles {
		roles[uid.String()] = string(role)
	}
	return &teamRecord{
		Name:      t.Name,
		Roles:     roles,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (x *teamRecord) toTeam(teamID types.TeamID) *team.Team {
	roles := make(map[types.UserID]team.Role, len(x.Roles))
	for uid, role := range x.Roles {
		roles[types.UserID(uid)] = team.Role(role)
	}
	return &team.Team{
		ID:        teamID,
		Name:      x.Name,
		Roles:     roles,
		CreatedAt: x.CreatedAt,
		UpdatedAt: x.UpdatedAt,
	}
}

func (r *Firestore) GetTeam(ctx context.Context, teamID types.TeamID) (*team.Team, error) {
	if err := teamID.Validate(); err != nil {
		return nil, nil
	}

	doc, err := r.teamDoc(teamID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get team",
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.T(errs.TagDatabase))
	}

	var record teamRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, r.eb.Wrap(err, "failed to convert data to team",
			goerr.TV(errs.TeamIDKey, teamID),
			goerr.T(errs.TagInternal))
	}

	return record.toTeam(teamID), nil
}

func (r *Firestore) PutTeam(ctx context.Context, t *team.Team) error {
	if err := t.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid team", goerr.TV(errs.TeamIDKey, t.ID))
	}

	if _, err := r.teamDoc(t.ID.String()).Set(ctx, newTeamRecord(t)); err != nil {
		return r.eb.Wrap(err, "failed to put team",
			goerr.TV(errs.TeamIDKey, t.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}
