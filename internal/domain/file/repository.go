package file

import (
	"context"

	"github.com/google/uuid"

	"file-share-api/internal/domain/user"
)

type Repository interface {
	CreateFile(ctx context.Context, ownerID user.ID, req *File) (*File, error)
	FetchFileByUUID(ctx context.Context, uuid uuid.UUID) (*File, error)
	FetchFilesByOwner(ctx context.Context, ownerID user.ID) (Files, error)
	FetchFilesSharedWith(ctx context.Context, userID user.ID) (Files, error)
	// FetchOwnerID is the ownership registry: it answers who owns a file
	// and nothing else. Returns ErrFileNotFound for unknown files.
	FetchOwnerID(ctx context.Context, uuid uuid.UUID) (user.ID, error)
	FetchInternalID(ctx context.Context, uuid uuid.UUID) (ID, error)
	DeleteFile(ctx context.Context, id ID) error
}
