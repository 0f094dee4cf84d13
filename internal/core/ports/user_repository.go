package ports

import (
	"context"

	"commerce/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for back-office users.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id int64) (*user.User, error)
}
