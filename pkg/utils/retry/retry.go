package retry

import (
	"context"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultMaxAttempts = 3
)

// Policy is a bounded retry policy for side-effect operations. Delay is a fixed
// wait between attempts; zero means retry immediately.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

func Default() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts}
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// Do calls fn until it succeeds, returns an error tagged errs.TagPermanent, or the
// attempt budget is exhausted. The last error is returned with the attempt count.
func (p Policy) Do(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	max := p.attempts()

	var lastErr error
	for attempt := 1; attempt <= max; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if goerr.HasTag(err, errs.TagPermanent) {
			return goerr.Wrap(err, "permanent failure, not retried",
				goerr.V("operation", name),
				goerr.V("attempt", attempt))
		}

		logging.From(ctx).Warn("attempt failed",
			"operation", name,
			"attempt", attempt,
			"max_attempts", max,
			logging.ErrAttr(err))

		if attempt == max {
			break
		}

		if p.Delay > 0 {
			timer := time.NewTimer(p.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return goerr.Wrap(ctx.Err(), "retry aborted",
					goerr.V("operation", name),
					goerr.V("attempt", attempt))
			case <-timer.C:
			}
		}
	}

	return goerr.Wrap(lastErr, "retry attempts exhausted",
		goerr.V("operation", name),
		goerr.V("attempts", max))
}
