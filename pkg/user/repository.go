package user

import (
	"context"

	"github.com/storekit/backend/pkg/apperr"
)

// Failures shared by repository implementations and use cases.
var (
	ErrNotFound   = apperr.New(apperr.NotFound, "user not found")
	ErrEmailTaken = apperr.New(apperr.Conflict, "email is already in use")
)

// Repository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}
