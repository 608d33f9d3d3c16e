package auth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

type ctxIdentityKey struct{}

type ctxAccessKey struct{}

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxIdentityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (*Identity, error) {
	id, ok := ctx.Value(ctxIdentityKey{}).(*Identity)
	if !ok || id == nil {
		return nil, goerr.New("identity not found in context")
	}
	return id, nil
}

func ContextWithAccess(ctx context.Context, access *Access) context.Context {
	return context.WithValue(ctx, ctxAccessKey{}, access)
}

func AccessFromContext(ctx context.Context) (*Access, error) {
	access, ok := ctx.Value(ctxAccessKey{}).(*Access)
	if !ok || access == nil {
		return nil, goerr.New("team access not found in context")
	}
	return access, nil
}
