package auth

import (
	"context"

	"stocktrack/internal/models"
)

type ctxKey string

const claimsKey ctxKey = "userClaims"

// Claims is the authenticated identity attached to a request.
type Claims struct {
	Subject  string
	Username string
	FullName string
	Role     string
}

func (c Claims) IsOwner() bool {
	return c.Role == models.RoleOwner
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(claimsKey).(Claims); ok {
		return v
	}
	return Claims{}
}

// Subject returns the authenticated user id, or "" for anonymous requests.
func Subject(ctx context.Context) string {
	return FromContext(ctx).Subject
}
