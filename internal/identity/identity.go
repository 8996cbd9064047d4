package identity

import "context"

// Identity is the per-request authenticated-user reference derived from a
// verified token. It lives for one request and is never persisted.
type Identity struct {
	UserID string
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the given identity
func NewContext(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the identity from ctx. The second return is false for
// anonymous requests (no identity attached, or attached as nil).
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
