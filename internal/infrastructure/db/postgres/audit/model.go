package audit

import (
	"time"

	"github.com/google/uuid"
)

type (
	Record struct {
		ID     uint64
		FileID uint64
		Action string
		Role   string

		ActorUUID     uuid.UUID
		ActorUsername string
		ActorEmail    string

		CreatedAt time.Time
	}
	Records []*Record
)
