package api

import (
	"context"

	"github.com/ksalau/learnflow-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser attaches the authenticated user to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// ctxGetUser retrieves the authenticated user from the context, or nil when
// the request passed through no authentication middleware.
func ctxGetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
