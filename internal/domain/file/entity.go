package file

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"file-share-api/internal/domain/user"
)

var ErrFileNotFound = errors.New("file not found")

type (
	ID   uint64
	File struct {
		ID      ID
		UUID    uuid.UUID
		OwnerID user.ID

		OriginalName string
		FileType     string
		SizeBytes    uint64
		Bucket       string
		StorageKey   string

		CreatedAt time.Time

		// populated only by the shared-with-me listing
		OwnerName string
		SharedAt  *time.Time
	}
	Files []*File
)
