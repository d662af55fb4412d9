package auth

import (
	"context"

	"github.com/pkg/errors"
)

// XUserIDHeader carries the id of the user issuing the request.
const XUserIDHeader = "X-User-Id"

type userIDKey struct{}

func SetUserContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func GetUserID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return 0, errors.New("no user id in context")
	}
	return id, nil
}
