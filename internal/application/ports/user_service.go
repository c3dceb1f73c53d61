package ports

import (
	"context"

	"file-share-api/internal/domain/user"
)

type UserService interface {
	FindUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindShareTargets(ctx context.Context, selfUUID user.UUID) (user.Users, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
}
