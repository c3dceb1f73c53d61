package ports

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/google/uuid"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

type FileService interface {
	CreateFiles(ctx context.Context, ownerUUID user.UUID, in []*multipart.FileHeader) (file.Files, error)
	FindMyFiles(ctx context.Context, ownerUUID user.UUID) (file.Files, error)
	FindSharedFiles(ctx context.Context, userUUID user.UUID) (file.Files, error)
	FindFileInfo(ctx context.Context, fileUUID uuid.UUID) (*file.File, error)
	DownloadFile(ctx context.Context, fileUUID uuid.UUID, actorUUID user.UUID, role share.Role) (*file.File, io.ReadCloser, error)
	DeleteFile(ctx context.Context, fileUUID uuid.UUID, actorUUID user.UUID) error
}
