// Package tenant carries the tenant domain of a request through context.Context.
package tenant

import "context"

// Default is the super tenant, used when a request names none.
const Default = "carbon.super"

type ctxKey struct{}

// WithTenant returns a copy of ctx carrying domain.
func WithTenant(ctx context.Context, domain string) context.Context {
	return context.WithValue(ctx, ctxKey{}, domain)
}

// FromContext returns the tenant domain stored in ctx, or Default.
func FromContext(ctx context.Context) string {
	if d, ok := ctx.Value(ctxKey{}).(string); ok && d != "" {
		return d
	}
	return Default
}
