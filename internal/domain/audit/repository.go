package audit

import (
	"context"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

// Repository is append-only: records are never updated or deleted.
type Repository interface {
	// Record inserts one entry. Errors always propagate to the caller;
	// the trail is a compliance artifact and must not fail silently.
	Record(ctx context.Context, fileID file.ID, actorID user.ID, action Action, role share.Role) error

	// FetchByFile returns the file's entries newest first, joined with
	// actor identity for display.
	FetchByFile(ctx context.Context, fileID file.ID) (Records, error)
}
