package config

import (
	"log/slog"

	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/urfave/cli/v3"
)

type Session struct {
	devMode bool
}

func (x *Session) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "dev",
			Usage:       "Development mode, the " + auth.SessionCookieName + " cookie is sent without the Secure attribute",
			Category:    "Session",
			Sources:     cli.EnvVars("DOCSBOT_DEV"),
			Destination: &x.devMode,
		},
	}
}

func (x Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("dev_mode", x.devMode),
		slog.Bool("secure_cookie", !x.devMode),
	)
}

func (x *Session) DevMode() bool {
	return x.devMode
}
