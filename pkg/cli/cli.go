package cli

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/cli/config"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	var loggerCfg config.Logger
	var closer func()
	return &cli.Command{
		Name:  "docsbot",
		Usage: "DocsBot dashboard server",
		Flags: loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			closer = f
			if err != nil {
				return ctx, err
			}

			logging.Default().Debug("base options", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdToken(),
		},
	}
}

func Run(ctx context.Context, args []string) error {
	if err := newCommand().Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", logging.ErrAttr(err))
		return err
	}

	return nil
}
