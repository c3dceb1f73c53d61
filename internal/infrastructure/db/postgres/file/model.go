package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID      uint64
		UUID    uuid.UUID
		OwnerID uint64

		OriginalName string
		FileType     string
		SizeBytes    uint64
		Bucket       string
		StorageKey   string

		CreatedAt time.Time

		OwnerName *string
		SharedAt  *time.Time
	}
	Files []*File
)
