package common

import (
	"context"
)

// CommonResponse is a lightweight response wrapper used by HTTP handlers.
type CommonResponse struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg,omitempty"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

type contextKey string

const ownerIDKey contextKey = "owner_id"

// ContextWithOwnerID stores the authenticated owner's ID on the context.
// Ownership checks in the service layer read it back with OwnerIDFromContext;
// there is no ambient request-global user state.
func ContextWithOwnerID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, ownerIDKey, id)
}

// OwnerIDFromContext returns the authenticated owner's ID, if any.
func OwnerIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ownerIDKey).(uint)
	return id, ok
}
