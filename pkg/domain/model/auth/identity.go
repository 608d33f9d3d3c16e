package auth

import (
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SuperAdminClaim is the custom claim that marks a platform-level identity.
const SuperAdminClaim = "superAdmin"

// Identity is the user identity resolved from a verified session token. It is
// derived per request and never persisted.
type Identity struct {
	UID        types.UserID `json:"uid"`
	Email      string       `json:"email,omitempty"`
	SuperAdmin bool         `json:"superAdmin"`
	ExpiresAt  time.Time    `json:"expiresAt"`
}

func (x *Identity) Validate() error {
	if x == nil {
		return goerr.New("nil identity")
	}
	if err := x.UID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid uid")
	}
	return nil
}

// Access is a successful team authorization result.
type Access struct {
	UserID     types.UserID
	SuperAdmin bool
	Team       *team.Team
}

// CanManage reports whether the caller may change team settings and membership.
func (x *Access) CanManage() bool {
	return x.SuperAdmin || x.Team.IsOwner(x.UserID)
}

// User is an account record held by the identity authority.
type User struct {
	UID         types.UserID `json:"uid"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName"`
}
