package team_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return now })

	tm := team.New(ctx, "Acme", "owner-1")
	gt.NoError(t, tm.Validate())
	gt.Equal(t, tm.Owner(), types.UserID("owner-1"))
	gt.True(t, tm.IsOwner("owner-1"))
	gt.True(t, tm.CreatedAt.Equal(now))
}

func TestValidate(t *testing.T) {
	base := func() *team.Team {
		return &team.Team{
			ID:   "team-1",
			Name: "Acme",
			Roles: map[types.UserID]team.Role{
				"owner-1":  team.RoleOwner,
				"member-1": team.RoleMember,
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		gt.NoError(t, base().Validate())
	})

	t.Run("no owner", func(t *testing.T) {
		tm := base()
		tm.Roles["owner-1"] = team.RoleMember
		err := tm.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagValidation))
	})

	t.Run("two owners", func(t *testing.T) {
		tm := base()
		tm.Roles["member-1"] = team.RoleOwner
		gt.Error(t, tm.Validate())
	})

	t.Run("unknown role", func(t *testing.T) {
		tm := base()
		tm.Roles["member-1"] = "admin"
		gt.Error(t, tm.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		tm := base()
		tm.Name = ""
		gt.Error(t, tm.Validate())
	})

	t.Run("long name", func(t *testing.T) {
		tm := base()
		tm.Name = strings.Repeat("a", 101)
		gt.Error(t, tm.Validate())
	})
}

func TestMembership(t *testing.T) {
	ctx := context.Background()
	tm := team.New(ctx, "Acme", "owner-1")

	t.Run("add member returns copy", func(t *testing.T) {
		updated, err := tm.AddMember(ctx, "member-1")
		gt.NoError(t, err)
		gt.True(t, updated.HasMember("member-1"))
		gt.False(t, tm.HasMember("member-1"))

		role, ok := updated.RoleOf("member-1")
		gt.True(t, ok)
		gt.Equal(t, role, team.RoleMember)
		gt.NoError(t, updated.Validate())
	})

	t.Run("add existing member fails", func(t *testing.T) {
		_, err := tm.AddMember(ctx, "owner-1")
		gt.Error(t, err)
	})

	t.Run("remove member", func(t *testing.T) {
		withMember, err := tm.AddMember(ctx, "member-1")
		gt.NoError(t, err)

		removed, err := withMember.RemoveMember(ctx, "member-1")
		gt.NoError(t, err)
		gt.False(t, removed.HasMember("member-1"))
		gt.True(t, withMember.HasMember("member-1"))
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		_, err := tm.RemoveMember(ctx, "owner-1")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagValidation))
	})

	t.Run("removing non-member is not found", func(t *testing.T) {
		_, err := tm.RemoveMember(ctx, "stranger")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})

	t.Run("rename", func(t *testing.T) {
		renamed, err := tm.Rename(ctx, "Acme Inc")
		gt.NoError(t, err)
		gt.Equal(t, renamed.Name, "Acme Inc")
		gt.Equal(t, tm.Name, "Acme")

		_, err = tm.Rename(ctx, "")
		gt.Error(t, err)
	})
}
