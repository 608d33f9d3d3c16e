package safe

import (
	"context"
	"io"

	"github.com/docsbotai/dashboard/pkg/utils/logging"
)

// Close closes closer and logs a failure instead of returning it. Use it where
// nothing useful can be done with the error, such as deferred cleanup.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Warn("failed to close", logging.ErrAttr(err))
	}
}

// Write writes data to a response whose status line has already been sent.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Warn("failed to write response", logging.ErrAttr(err))
	}
}
