package team

import (
	"context"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

func (r Role) Validate() error {
	switch r {
	case RoleOwner, RoleMember:
		return nil
	}
	return goerr.New("invalid role", goerr.V("role", r))
}

const maxNameLength = 100

// Team is a tenant grouping of users. Roles maps a user ID to its role; exactly
// one user holds RoleOwner.
type Team struct {
	ID        types.TeamID          `json:"id" firestore:"id"`
	Name      string                `json:"name" firestore:"name"`
	Roles     map[types.UserID]Role `json:"roles" firestore:"roles"`
	CreatedAt time.Time             `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt" firestore:"updatedAt"`
}

func New(ctx context.Context, name string, owner types.UserID) *Team {
	now := clock.Now(ctx)
	return &Team{
		ID:   types.NewTeamID(),
		Name: name,
		Roles: map[types.UserID]Role{
			owner: RoleOwner,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (x *Team) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid team ID", goerr.T(errs.TagValidation))
	}
	if err := ValidateName(x.Name); err != nil {
		return err
	}

	owners := 0
	for uid, role := range x.Roles {
		if err := uid.Validate(); err != nil {
			return goerr.Wrap(err, "invalid member ID", goerr.T(errs.TagValidation))
		}
		if err := role.Validate(); err != nil {
			return goerr.Wrap(err, "invalid member role", goerr.T(errs.TagValidation), goerr.V("uid", uid))
		}
		if role == RoleOwner {
			owners++
		}
	}
	if owners != 1 {
		return goerr.New("team must have exactly one owner",
			goerr.T(errs.TagValidation),
			goerr.V("team_id", x.ID),
			goerr.V("owners", owners))
	}

	return nil
}

func ValidateName(name string) error {
	if name == "" {
		return goerr.New("team name is required", goerr.T(errs.TagValidation))
	}
	if len([]rune(name)) > maxNameLength {
		return goerr.New("team name is too long",
			goerr.T(errs.TagValidation),
			goerr.V("max", maxNameLength))
	}
	return nil
}

// RoleOf returns the role of uid and whether uid belongs to the team.
func (x *Team) RoleOf(uid types.UserID) (Role, bool) {
	role, ok := x.Roles[uid]
	return role, ok
}

func (x *Team) HasMember(uid types.UserID) bool {
	_, ok := x.Roles[uid]
	return ok
}

func (x *Team) IsOwner(uid types.UserID) bool {
	role, ok := x.Roles[uid]
	return ok && role == RoleOwner
}

func (x *Team) Owner() types.UserID {
	for uid, role := range x.Roles {
		if role == RoleOwner {
			return uid
		}
	}
	return ""
}

// AddMember returns a copy of the team with uid added as a member. Existing
// members keep their role.
func (x *Team) AddMember(ctx context.Context, uid types.UserID) (*Team, error) {
	if err := uid.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid member ID", goerr.T(errs.TagValidation))
	}
	if x.HasMember(uid) {
		return nil, goerr.New("user is already a team member",
			goerr.T(errs.TagValidation),
			goerr.V("team_id", x.ID),
			goerr.V("uid", uid))
	}

	updated := x.Copy()
	updated.Roles[uid] = RoleMember
	updated.UpdatedAt = clock.Now(ctx)
	return updated, nil
}

// RemoveMember returns a copy of the team without uid. The owner cannot be removed.
func (x *Team) RemoveMember(ctx context.Context, uid types.UserID) (*Team, error) {
	role, ok := x.Roles[uid]
	if !ok {
		return nil, goerr.New("user is not a team member",
			goerr.T(errs.TagNotFound),
			goerr.V("team_id", x.ID),
			goerr.V("uid", uid))
	}
	if role == RoleOwner {
		return nil, goerr.New("team owner cannot be removed",
			goerr.T(errs.TagValidation),
			goerr.V("team_id", x.ID),
			goerr.V("uid", uid))
	}

	updated := x.Copy()
	delete(updated.Roles, uid)
	updated.UpdatedAt = clock.Now(ctx)
	return updated, nil
}

func (x *Team) Rename(ctx context.Context, name string) (*Team, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	updated := x.Copy()
	updated.Name = name
	updated.UpdatedAt = clock.Now(ctx)
	return updated, nil
}

// Copy returns a deep copy of the team.
func (x *Team) Copy() *Team {
	c := *x
	c.Roles = make(map[types.UserID]Role, len(x.Roles))
	for uid, role := range x.Roles {
		c.Roles[uid] = role
	}
	return &c
}
