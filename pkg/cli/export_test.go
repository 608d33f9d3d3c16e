package cli

import (
	"io"

	"github.com/urfave/cli/v3"
)

var DashboardURL = dashboardURL

func NewCommand(w io.Writer) *cli.Command {
	cmd := newCommand()
	cmd.Writer = w
	return cmd
}
