package config

import (
	"context"
	"log/slog"

	"github.com/docsbotai/dashboard/pkg/adapter/identity"
	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	IdentityFirebase = "firebase"
	IdentityLocal    = "local"
)

// IdentityProvider verifies sessions and resolves users by email.
type IdentityProvider interface {
	interfaces.SessionVerifier
	interfaces.UserDirectory
}

type Identity struct {
	provider     string
	projectID    string
	checkRevoked bool
	localSecret  string `masq:"secret"`
	localUsers   string
}

func (x *Identity) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "identity",
			Usage:       "Identity authority [firebase|local]",
			Category:    "Identity",
			Value:       IdentityFirebase,
			Sources:     cli.EnvVars("DOCSBOT_IDENTITY"),
			Destination: &x.provider,
		},
		&cli.StringFlag{
			Name:        "firebase-project-id",
			Usage:       "Firebase project ID that issues session cookies",
			Category:    "Identity",
			Sources:     cli.EnvVars("DOCSBOT_FIREBASE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.BoolFlag{
			Name:        "identity-check-revoked",
			Usage:       "Reject revoked sessions and disabled users (one extra call per request)",
			Category:    "Identity",
			Sources:     cli.EnvVars("DOCSBOT_IDENTITY_CHECK_REVOKED"),
			Destination: &x.checkRevoked,
		},
		&cli.StringFlag{
			Name:        "local-identity-secret",
			Usage:       "HMAC secret of the local identity authority (32 bytes or more)",
			Category:    "Identity",
			Sources:     cli.EnvVars("DOCSBOT_LOCAL_IDENTITY_SECRET"),
			Destination: &x.localSecret,
		},
		&cli.StringFlag{
			Name:        "local-users",
			Usage:       "Users known to the local identity authority, as uid:email pairs separated by commas",
			Category:    "Identity",
			Sources:     cli.EnvVars("DOCSBOT_LOCAL_USERS"),
			Destination: &x.localUsers,
		},
	}
}

func (x Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("provider", x.provider),
		slog.String("project_id", x.projectID),
		slog.Bool("check_revoked", x.checkRevoked),
		slog.Bool("local_secret_set", x.localSecret != ""),
		slog.String("local_users", x.localUsers),
	)
}

func (x *Identity) Configure(ctx context.Context) (IdentityProvider, error) {
	switch x.provider {
	case IdentityFirebase:
		if x.projectID == "" {
			return nil, goerr.New("--firebase-project-id is required for firebase identity")
		}
		fb, err := identity.NewFirebase(ctx, x.projectID, identity.WithCheckRevoked(x.checkRevoked))
		if err != nil {
			return nil, err
		}
		return fb, nil

	case IdentityLocal:
		local, err := x.ConfigureLocal()
		if err != nil {
			return nil, err
		}
		return local, nil

	default:
		return nil, goerr.New("unknown identity authority", goerr.V("identity", x.provider))
	}
}

// ConfigureLocal builds the local authority regardless of the selected provider.
func (x *Identity) ConfigureLocal() (*identity.Local, error) {
	if x.localSecret == "" {
		return nil, goerr.New("--local-identity-secret is required for local identity")
	}

	users, err := identity.ParseUsers(x.localUsers)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse --local-users")
	}

	return identity.NewLocal([]byte(x.localSecret), users...)
}
