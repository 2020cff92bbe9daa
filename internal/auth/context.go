package auth

import (
	"context"
)

// CallerContext holds the identity behind a request or a scheduled run.
// Planning operations receive it explicitly through the context instead of
// reading ambient session state.
type CallerContext struct {
	Subject     string
	DisplayName string
	System      bool
}

type contextKey string

const callerContextKey contextKey = "callerContext"

// SystemCaller is the identity used by the cron scheduler and migrations.
var SystemCaller = &CallerContext{
	Subject:     "system",
	DisplayName: "Scheduler",
	System:      true,
}

// WithCaller adds caller identity to the context
func WithCaller(ctx context.Context, caller *CallerContext) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// FromContext extracts caller identity from the context
func FromContext(ctx context.Context) (*CallerContext, bool) {
	caller, ok := ctx.Value(callerContextKey).(*CallerContext)
	return caller, ok
}

// CallerName returns the display name of the caller, or "unknown" when the
// context carries no identity.
func CallerName(ctx context.Context) string {
	if caller, ok := FromContext(ctx); ok {
		return caller.DisplayName
	}
	return "unknown"
}
