package session

import "context"

type accessorContextKey struct{}

// WithAccessor attaches a request-scoped accessor to ctx.
func WithAccessor(ctx context.Context, a *Accessor) context.Context {
	return context.WithValue(ctx, accessorContextKey{}, a)
}

// AccessorFromContext returns the accessor installed by Middleware.
func AccessorFromContext(ctx context.Context) (*Accessor, bool) {
	a, ok := ctx.Value(accessorContextKey{}).(*Accessor)
	return a, ok && a != nil
}

// Current returns the session of the request carried by ctx, validating it on
// first use. Without an accessor in ctx the empty result is returned.
func Current(ctx context.Context) (ValidationResult, error) {
	a, ok := AccessorFromContext(ctx)
	if !ok {
		return ValidationResult{}, nil
	}
	return a.Current(ctx)
}

// UserFromContext returns the signed-in user, if any. Store failures read as signed out.
func UserFromContext(ctx context.Context) (*User, bool) {
	res, err := Current(ctx)
	if err != nil || !res.Valid() {
		return nil, false
	}
	return res.User, true
}
