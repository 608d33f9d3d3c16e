package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/docsbotai/dashboard/pkg/cli/config"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// cmdToken mints tokens signed by the local identity authority. A session
// token can be sent as the docsbot-auth cookie, an ID token can be exchanged
// through POST /api/login.
func cmdToken() *cli.Command {
	var (
		identityCfg config.Identity
		uid         string
		email       string
		superAdmin  bool
		idToken     bool
		expiresIn   time.Duration
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "uid",
				Usage:       "User ID of the token subject",
				Required:    true,
				Destination: &uid,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "Email address claim",
				Destination: &email,
			},
			&cli.BoolFlag{
				Name:        "super-admin",
				Usage:       "Set the " + auth.SuperAdminClaim + " claim",
				Destination: &superAdmin,
			},
			&cli.BoolFlag{
				Name:        "id-token",
				Usage:       "Issue an ID token for POST /api/login instead of a session token",
				Destination: &idToken,
			},
			&cli.DurationFlag{
				Name:        "expires-in",
				Usage:       "Session token lifetime",
				Value:       auth.SessionDuration,
				Destination: &expiresIn,
			},
		},
		identityCfg.Flags(),
	)

	return &cli.Command{
		Name:  "token",
		Usage: "Issue a token from the local identity authority",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			local, err := identityCfg.ConfigureLocal()
			if err != nil {
				return err
			}

			id := &auth.Identity{
				UID:        types.UserID(uid),
				Email:      email,
				SuperAdmin: superAdmin,
			}
			if err := id.Validate(); err != nil {
				return goerr.Wrap(err, "invalid token subject", goerr.V("uid", uid))
			}

			var token string
			if idToken {
				t, err := local.IssueIDToken(ctx, id)
				if err != nil {
					return err
				}
				token = string(t)
			} else {
				if expiresIn <= 0 {
					return goerr.New("--expires-in must be positive", goerr.V("expires_in", expiresIn))
				}
				t, err := local.IssueSessionToken(ctx, id, expiresIn)
				if err != nil {
					return err
				}
				token = string(t)
			}

			if _, err := fmt.Fprintln(cmd.Root().Writer, token); err != nil {
				return goerr.Wrap(err, "failed to write token")
			}
			return nil
		},
	}
}
