package share

import (
	"time"

	"github.com/google/uuid"
)

type (
	Share struct {
		ID      uint64
		UUID    uuid.UUID
		FileID  uint64
		OwnerID uint64

		SharedWithUserID *uint64
		TargetUsername   *string
		TargetEmail      *string
		ShareToken       *string

		ExpiresAt *time.Time
		CreatedAt time.Time
	}
	Shares []*Share

	Link struct {
		UUID     uuid.UUID
		FileID   uint64
		FileUUID uuid.UUID

		SharedWithUserID *uint64
		ShareToken       string
		ExpiresAt        *time.Time
	}
)
