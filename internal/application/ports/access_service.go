package ports

import (
	"context"

	"github.com/google/uuid"

	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

// AccessService answers what role, if any, an actor has on a file.
// Resolution never mutates state; callers audit the actions it enables.
type AccessService interface {
	ResolveFileRole(ctx context.Context, actorUUID user.UUID, fileUUID uuid.UUID) (share.Role, error)
	ResolveTokenRole(ctx context.Context, actorUUID user.UUID, token string) (*share.TokenAccess, error)
}
