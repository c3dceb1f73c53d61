package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-share-api/internal/application/ports"
	"file-share-api/internal/domain/audit"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
	"file-share-api/internal/infrastructure/mq"
)

// Collision probability for fresh tokens is negligible, but the store
// still enforces global uniqueness; a handful of retries is plenty.
const maxTokenAttempts = 3

type ShareService struct {
	fileRepository  file.Repository
	shareRepository share.Repository
	userRepository  user.Repository
	auditRepository audit.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewShareService(
	fileRepository file.Repository,
	shareRepository share.Repository,
	userRepository user.Repository,
	auditRepository audit.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ShareService {
	return &ShareService{
		fileRepository:  fileRepository,
		shareRepository: shareRepository,
		userRepository:  userRepository,
		auditRepository: auditRepository,
		mq:              rbMQ,
		mCounter:        mCounter,
	}
}

// ShareWithUsers processes each target independently: an unknown target
// id lands in Invalid and never aborts the rest of the batch. When no
// grant was inserted or extended at all, ErrNothingShared is returned
// alongside the result.
func (ss *ShareService) ShareWithUsers(
	ctx context.Context,
	fileUUID uuid.UUID,
	ownerUUID user.UUID,
	targets []user.UUID,
	expiresAt *time.Time,
) (*share.BatchResult, error) {
	ownerID, err := ss.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}
	fileID, err := ss.fileRepository.FetchInternalID(ctx, fileUUID)
	if err != nil {
		return nil, err
	}

	res := new(share.BatchResult)
	for _, target := range targets {
		u, err := ss.userRepository.FetchUserByUUID(ctx, target)
		if err != nil {
			return nil, err
		}
		if u == nil {
			res.Invalid = append(res.Invalid, target)
			continue
		}

		targetID, err := ss.userRepository.FetchInternalID(ctx, target)
		if err != nil {
			return nil, err
		}

		grant, err := ss.shareRepository.UpsertGrant(ctx, fileID, ownerID, targetID, expiresAt)
		if err != nil {
			return nil, err
		}

		action := audit.ActionShareUpdated
		if grant.Created {
			action = audit.ActionShare
		}
		if err = ss.auditRepository.Record(ctx, fileID, ownerID, action, share.RoleOwner); err != nil {
			return nil, err
		}

		su := share.SharedUser{UUID: u.UUID, Username: u.Username}
		if grant.Created {
			res.Created = append(res.Created, su)
		} else {
			res.Updated = append(res.Updated, su)
		}
	}

	if len(res.Created) == 0 && len(res.Updated) == 0 {
		return res, fmt.Errorf("share file %s: %w", fileUUID.String(), share.ErrNothingShared)
	}

	ss.publishEvent(mq.RouteShare, fileUUID, ownerUUID, res)
	ss.mCounter.WithLabelValues("file_shares_total").Inc()

	return res, nil
}

// CreateOrUpdateLink keeps the singleton-per-file invariant in the
// store: a concurrent losing insert converges onto the existing row and
// we hand back its original token.
func (ss *ShareService) CreateOrUpdateLink(
	ctx context.Context,
	fileUUID uuid.UUID,
	ownerUUID user.UUID,
	expiresAt *time.Time,
) (*share.LinkResult, error) {
	ownerID, err := ss.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}
	fileID, err := ss.fileRepository.FetchInternalID(ctx, fileUUID)
	if err != nil {
		return nil, err
	}

	var res *share.LinkResult
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		res, err = ss.shareRepository.UpsertLink(ctx, fileID, ownerID, uuid.NewString(), expiresAt)
		if err == nil {
			break
		}
		if !errors.Is(err, share.ErrTokenCollision) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	action := audit.ActionShareLinkUpd
	if res.Created {
		action = audit.ActionShareLink
	}
	if err = ss.auditRepository.Record(ctx, fileID, ownerID, action, share.RoleOwner); err != nil {
		return nil, err
	}

	ss.publishEvent(mq.RouteShareLink, fileUUID, ownerUUID, nil)
	ss.mCounter.WithLabelValues("share_links_total").Inc()

	return res, nil
}

func (ss *ShareService) ListShares(ctx context.Context, fileUUID uuid.UUID) (share.Shares, error) {
	fileID, err := ss.fileRepository.FetchInternalID(ctx, fileUUID)
	if err != nil {
		return nil, err
	}

	return ss.shareRepository.FetchSharesByFile(ctx, fileID)
}

// DeleteShare only matches rows owned by the caller; a foreign share
// uuid reads as not found.
// TODO: emit an audit record for share revocation.
func (ss *ShareService) DeleteShare(ctx context.Context, shareUUID uuid.UUID, ownerUUID user.UUID) error {
	ownerID, err := ss.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return err
	}

	return ss.shareRepository.DeleteShare(ctx, shareUUID, ownerID)
}

func (ss *ShareService) publishEvent(action string, fileUUID uuid.UUID, ownerUUID user.UUID, res *share.BatchResult) {
	e := mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		FileID:  fileUUID.String(),
		OwnerID: ownerUUID.String(),
	}
	if res != nil {
		for _, su := range res.Created {
			e.Targets = append(e.Targets, su.UUID.String())
		}
		for _, su := range res.Updated {
			e.Targets = append(e.Targets, su.UUID.String())
		}
	}

	ss.mq.GetInputChan() <- e
}
