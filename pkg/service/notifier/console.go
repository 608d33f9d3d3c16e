package notifier

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/notify"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

// ConsoleNotifier prints notifications to a terminal with color formatting.
// Useful for local development where no mail server is available.
type ConsoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ interfaces.Notifier = &ConsoleNotifier{}

// NewConsoleNotifier creates a console notifier writing to w, or stdout when w is nil.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Name() string {
	return "console"
}

func (n *ConsoleNotifier) Notify(ctx context.Context, msg notify.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	blue := color.New(color.FgBlue, color.Bold)
	white := color.New(color.FgWhite)

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := blue.Fprintf(n.w, "Notification to %s: ", msg.To); err != nil {
		return goerr.Wrap(err, "failed to write notification")
	}
	if _, err := white.Fprintf(n.w, "%s\n  %s\n\n", msg.Subject, msg.Body); err != nil {
		return goerr.Wrap(err, "failed to write notification")
	}
	return nil
}
