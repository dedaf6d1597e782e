package tenant

import "context"

type contextKey struct{}

// NewContext returns a copy of parent carrying the given tenant scope.
func NewContext(parent context.Context, sc Context) context.Context {
	return context.WithValue(parent, contextKey{}, sc)
}

// FromContext extracts the tenant scope from ctx. It returns ErrNoTenant when
// no scope was attached, which forces proper middleware setup on every route.
func FromContext(ctx context.Context) (Context, error) {
	sc, ok := ctx.Value(contextKey{}).(Context)
	if !ok || !sc.IsValid() {
		return Context{}, ErrNoTenant
	}
	return sc, nil
}
