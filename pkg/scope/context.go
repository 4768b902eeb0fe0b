package scope

import "context"

type ctxKey struct{}

// SetToContext attaches the verified scope to the request context.
func SetToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// FromContext extracts the scope set by the auth middleware.
func FromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(Scope)
	return sc, ok
}
