package share

import (
	"context"
	"time"

	"github.com/google/uuid"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/user"
)

// Repository persists grants and links. Both upserts must be atomic
// (single insert-or-update statement keyed by a uniqueness constraint),
// never a separate existence check followed by an insert.
type Repository interface {
	// UpsertGrant inserts a grant for (fileID, targetID) or, when a row
	// for that pair already exists in any expiry state, extends its
	// expires_at in place.
	UpsertGrant(ctx context.Context, fileID file.ID, ownerID, targetID user.ID, expiresAt *time.Time) (*GrantResult, error)

	// UpsertLink inserts the file's single link row with the candidate
	// token, or extends the existing row and returns its stored token.
	// A global token collision surfaces as ErrTokenCollision so the
	// caller can regenerate.
	UpsertLink(ctx context.Context, fileID file.ID, ownerID user.ID, token string, expiresAt *time.Time) (*LinkResult, error)

	FetchActiveGrant(ctx context.Context, fileID file.ID, userID user.ID) (*Share, error)
	FetchLinkByToken(ctx context.Context, token string) (*Link, error)
	FetchSharesByFile(ctx context.Context, fileID file.ID) (Shares, error)

	// DeleteShare removes a grant or link, scoped to the owning actor.
	// Returns ErrShareNotFound when no row matches both uuid and owner.
	DeleteShare(ctx context.Context, uuid uuid.UUID, ownerID user.ID) error
}
