package session

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller for the current request
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

type contextKey struct{}

// WithIdentity stores the caller in ctx, the auth middleware does this
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the caller, ok is false on unauthenticated requests
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
