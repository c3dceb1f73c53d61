package share

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/user"
)

var (
	ErrShareNotFound  = errors.New("share not found or expired")
	ErrAccessDenied   = errors.New("access denied")
	ErrNothingShared  = errors.New("all selected users already have active access")
	ErrTokenCollision = errors.New("share token already in use")
)

// Role is the resolved access level of an actor on a file.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleViewer Role = "viewer"
	RoleNone   Role = ""
)

type (
	// Share is one row of the sharing relation: either a named grant
	// (TargetUserID set) or an anonymous link (Token set), never both.
	Share struct {
		UUID    uuid.UUID
		OwnerID user.ID

		TargetUserID   *user.ID
		TargetUsername *string
		TargetEmail    *string
		Token          *string

		ExpiresAt *time.Time
		CreatedAt time.Time
	}
	Shares []*Share

	// Link is a token-addressed share row resolved for access checks.
	Link struct {
		UUID         uuid.UUID
		FileID       file.ID
		FileUUID     uuid.UUID
		TargetUserID *user.ID
		Token        string
		ExpiresAt    *time.Time
	}

	// TokenAccess is the outcome of resolving a presented link token.
	TokenAccess struct {
		FileID   file.ID
		FileUUID uuid.UUID
		Role     Role
	}

	// GrantResult reports whether an upsert inserted or extended a grant.
	GrantResult struct {
		UUID    uuid.UUID
		Created bool
	}

	// LinkResult carries the stored token; on re-issue it is the
	// original token, not the candidate passed to the store.
	LinkResult struct {
		UUID    uuid.UUID
		Token   string
		Created bool
	}

	SharedUser struct {
		UUID     user.UUID
		Username string
	}

	// BatchResult is the per-target outcome of a batch share request.
	// Invalid target ids never abort the rest of the batch.
	BatchResult struct {
		Created []SharedUser
		Updated []SharedUser
		Invalid []user.UUID
	}
)

// Active reports whether the row grants access at instant now.
// Expiry is a read-time predicate; expired rows stay in storage.
func (s *Share) Active(now time.Time) bool {
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}
