package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"file-share-api/internal/application/ports"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

// AccessService composes the ownership registry and the share stores
// to resolve roles. It has no side effects: auditing the action a
// resolution enables is the caller's job.
type AccessService struct {
	fileRepository  file.Repository
	shareRepository share.Repository
	userRepository  user.Repository
}

func NewAccessService(
	fileRepository file.Repository,
	shareRepository share.Repository,
	userRepository user.Repository,
) ports.AccessService {
	return &AccessService{
		fileRepository:  fileRepository,
		shareRepository: shareRepository,
		userRepository:  userRepository,
	}
}

// ResolveFileRole: the owner always resolves Owner, whatever the grant
// state; otherwise an active grant yields Viewer; otherwise RoleNone.
func (as *AccessService) ResolveFileRole(
	ctx context.Context,
	actorUUID user.UUID,
	fileUUID uuid.UUID,
) (share.Role, error) {
	ownerID, err := as.fileRepository.FetchOwnerID(ctx, fileUUID)
	if err != nil {
		return share.RoleNone, err
	}

	actorID, err := as.userRepository.FetchInternalID(ctx, actorUUID)
	if err != nil {
		return share.RoleNone, err
	}

	if actorID == ownerID {
		return share.RoleOwner, nil
	}

	fileID, err := as.fileRepository.FetchInternalID(ctx, fileUUID)
	if err != nil {
		return share.RoleNone, err
	}

	grant, err := as.shareRepository.FetchActiveGrant(ctx, fileID, actorID)
	if err != nil {
		return share.RoleNone, err
	}
	if grant != nil {
		return share.RoleViewer, nil
	}

	return share.RoleNone, nil
}

// ResolveTokenRole: a valid link token grants Viewer to any
// authenticated actor, whoever presents it.
func (as *AccessService) ResolveTokenRole(
	ctx context.Context,
	actorUUID user.UUID,
	token string,
) (*share.TokenAccess, error) {
	link, err := as.shareRepository.FetchLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("token: %w", share.ErrShareNotFound)
	}

	// A link row never carries a bound target user; if one shows up
	// anyway the data shape is broken, and we deny rather than trust it.
	if link.TargetUserID != nil {
		actorID, err := as.userRepository.FetchInternalID(ctx, actorUUID)
		if err != nil {
			return nil, err
		}
		if *link.TargetUserID != actorID {
			return nil, fmt.Errorf("token bound to another user: %w", share.ErrAccessDenied)
		}
	}

	return &share.TokenAccess{
		FileID:   link.FileID,
		FileUUID: link.FileUUID,
		Role:     share.RoleViewer,
	}, nil
}
