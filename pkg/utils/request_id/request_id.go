package request_id

import (
	"context"

	"github.com/google/uuid"
)

// Header carries the request ID in both directions.
const Header = "X-Request-Id"

type ctxRequestIDKey struct{}

func With(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, requestID)
}

// FromContext returns the request ID or "" when none is set.
func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ctxRequestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// Resolve keeps an inbound request ID set by a trusted proxy when it is a
// UUID and generates a new one otherwise.
func Resolve(ctx context.Context, inbound string) (context.Context, string) {
	if id, err := uuid.Parse(inbound); err == nil {
		return With(ctx, id.String()), id.String()
	}
	return Generate(ctx)
}

func Generate(ctx context.Context) (context.Context, string) {
	requestID := uuid.New().String()
	return With(ctx, requestID), requestID
}
