package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

type ShareService interface {
	ShareWithUsers(ctx context.Context, fileUUID uuid.UUID, ownerUUID user.UUID, targets []user.UUID, expiresAt *time.Time) (*share.BatchResult, error)
	CreateOrUpdateLink(ctx context.Context, fileUUID uuid.UUID, ownerUUID user.UUID, expiresAt *time.Time) (*share.LinkResult, error)
	ListShares(ctx context.Context, fileUUID uuid.UUID) (share.Shares, error)
	DeleteShare(ctx context.Context, shareUUID uuid.UUID, ownerUUID user.UUID) error
}
