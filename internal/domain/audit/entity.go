package audit

import (
	"time"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

// Action is the recorded kind of an access-relevant event.
// Grant, link and file deletions are intentionally not recorded;
// the trail mirrors the actions that granted or used access.
type Action string

const (
	ActionUpload       Action = "upload"
	ActionDownload     Action = "download"
	ActionShare        Action = "share"
	ActionShareUpdated Action = "share_updated"
	ActionShareLink    Action = "share_link"
	ActionShareLinkUpd Action = "share_link_updated"
)

type (
	// Record is one immutable entry of the audit trail.
	Record struct {
		ID     uint64
		FileID file.ID
		Action Action
		Role   share.Role

		ActorUUID     user.UUID
		ActorUsername string
		ActorEmail    string

		CreatedAt time.Time
	}
	Records []*Record
)
