package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	NameKey   contextKey = "name"
)

// AuthUser is the request-scoped identity injected by the auth middleware.
type AuthUser struct {
	ID    uuid.UUID
	Email string
	Name  string
}

func SetAuthUserContext(ctx context.Context, user AuthUser) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, user.ID.String())
	ctx = context.WithValue(ctx, EmailKey, user.Email)
	ctx = context.WithValue(ctx, NameKey, user.Name)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetAuthUserFromContext(ctx context.Context) (AuthUser, bool) {
	id, ok := GetUserIDFromContext(ctx)
	if !ok {
		return AuthUser{}, false
	}

	email, _ := ctx.Value(EmailKey).(string)
	name, _ := ctx.Value(NameKey).(string)

	return AuthUser{ID: id, Email: email, Name: name}, true
}
