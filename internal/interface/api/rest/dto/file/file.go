package file

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	UUID         uuid.UUID  `json:"id"`
	OriginalName string     `json:"original_name"`
	FileType     string     `json:"file_type"`
	SizeBytes    uint64     `json:"size_bytes"`
	CreatedAt    time.Time  `json:"created_at"`
	OwnerName    string     `json:"owner_name,omitempty"`
	SharedAt     *time.Time `json:"shared_at,omitempty"`
}

type Files []File

type ResponseData struct {
	Data Files `json:"data"`
}
