// Package tracking carries the per-request track id through contexts.
package tracking

import "context"

const Header = "X-Track-ID"

type ctxKey struct{}

func WithTrackID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func TrackID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
