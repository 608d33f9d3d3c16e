package errs

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/docsbotai/dashboard/pkg/utils/request_id"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// errorKind names the server-side tag of err for grouping in Sentry.
func errorKind(err error) string {
	switch {
	case goerr.HasTag(err, TagDatabase):
		return "database"
	case goerr.HasTag(err, TagService):
		return "service"
	case goerr.HasTag(err, TagInternal):
		return "internal"
	case goerr.HasTag(err, TagPermanent):
		return "permanent"
	default:
		return "unknown"
	}
}

// Handle logs err and reports it to Sentry. Use it for errors that reach a
// boundary without a caller to return them to.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "[CRITICAL] error handling panicked: original_error=%s, panic=%v\n",
				err.Error(), r)
		}
	}()

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID := request_id.FromContext(ctx); reqID != "" {
			scope.SetTag("request_id", reqID)
		}
		scope.SetTag("kind", errorKind(err))

		values := goerr.Values(err)
		if uid, ok := values["user_id"]; ok {
			scope.SetUser(sentry.User{ID: fmt.Sprint(uid)})
		}
		for k, v := range values {
			scope.SetExtra(k, v)
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error("unhandled error: "+err.Error(),
		logging.ErrAttr(err),
		slog.Any("sentry.id", evID),
	)
}
