package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-share-api/internal/domain/audit"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

func newShareService(
	fileRepo *FakeFileRepo,
	shareRepo *FakeShareRepo,
	userRepo *FakeUserRepo,
	auditRepo *FakeAuditRepo,
) *ShareService {
	return &ShareService{
		fileRepository:  fileRepo,
		shareRepository: shareRepo,
		userRepository:  userRepo,
		auditRepository: auditRepo,
		mq:              NewFakeRabbitMQ(),
		mCounter:        newTestCounter(),
	}
}

func internalIDsFixture(known map[user.UUID]user.ID) *FakeUserRepo {
	return &FakeUserRepo{
		FetchUserByUUIDFunc: func(ctx context.Context, id user.UUID) (*user.User, error) {
			if _, ok := known[id]; !ok {
				return nil, nil
			}
			return &user.User{UUID: id, Username: "u-" + id.String()[:8]}, nil
		},
		FetchInternalIDFunc: func(ctx context.Context, id user.UUID) (user.ID, error) {
			if iid, ok := known[id]; ok {
				return iid, nil
			}
			return 0, user.ErrUserNotFound
		},
	}
}

func TestShareService_ShareWithUsers_MixedBatch(t *testing.T) {
	ownerUUID := uuid.New()
	freshUUID := uuid.New()
	repeatUUID := uuid.New()
	unknownUUID := uuid.New()

	userRepo := internalIDsFixture(map[user.UUID]user.ID{
		ownerUUID:  1,
		freshUUID:  2,
		repeatUUID: 3,
	})
	fileRepo := &FakeFileRepo{
		FetchInternalIDFunc: func(ctx context.Context, id uuid.UUID) (file.ID, error) {
			return 10, nil
		},
	}
	shareRepo := &FakeShareRepo{
		UpsertGrantFunc: func(ctx context.Context, fileID file.ID, ownerID, targetID user.ID, expiresAt *time.Time) (*share.GrantResult, error) {
			// target 3 already holds a grant, target 2 does not
			return &share.GrantResult{UUID: uuid.New(), Created: targetID == 2}, nil
		},
	}
	auditRepo := &FakeAuditRepo{}

	svc := newShareService(fileRepo, shareRepo, userRepo, auditRepo)
	res, err := svc.ShareWithUsers(
		context.Background(),
		uuid.New(), ownerUUID,
		[]user.UUID{freshUUID, unknownUUID, repeatUUID},
		nil,
	)
	require.NoError(t, err)

	require.Len(t, res.Created, 1)
	require.Len(t, res.Updated, 1)
	require.Len(t, res.Invalid, 1)
	assert.Equal(t, freshUUID, res.Created[0].UUID)
	assert.Equal(t, repeatUUID, res.Updated[0].UUID)
	assert.Equal(t, unknownUUID, res.Invalid[0])

	// one entry per effective grant, attributed as owner actions
	assert.Equal(t, []audit.Action{audit.ActionShare, audit.ActionShareUpdated}, auditRepo.Recorded)
}

func TestShareService_ShareWithUsers_AllInvalid(t *testing.T) {
	ownerUUID := uuid.New()
	unknownUUID := uuid.New()

	userRepo := internalIDsFixture(map[user.UUID]user.ID{ownerUUID: 1})
	fileRepo := &FakeFileRepo{
		FetchInternalIDFunc: func(ctx context.Context, id uuid.UUID) (file.ID, error) {
			return 10, nil
		},
	}
	auditRepo := &FakeAuditRepo{}

	svc := newShareService(fileRepo, &FakeShareRepo{}, userRepo, auditRepo)
	res, err := svc.ShareWithUsers(context.Background(), uuid.New(), ownerUUID, []user.UUID{unknownUUID}, nil)

	require.ErrorIs(t, err, share.ErrNothingShared)
	require.NotNil(t, res)
	assert.Equal(t, []user.UUID{unknownUUID}, res.Invalid)
	assert.Empty(t, auditRepo.Recorded)
}

func TestShareService_CreateOrUpdateLink_RetriesOnCollision(t *testing.T) {
	ownerUUID := uuid.New()
	linkUUID := uuid.New()

	userRepo := internalIDsFixture(map[user.UUID]user.ID{ownerUUID: 1})
	fileRepo := &FakeFileRepo{
		FetchInternalIDFunc: func(ctx context.Context, id uuid.UUID) (file.ID, error) {
			return 10, nil
		},
	}

	var attempts int
	var tokens []string
	shareRepo := &FakeShareRepo{
		UpsertLinkFunc: func(ctx context.Context, fileID file.ID, ownerID user.ID, token string, expiresAt *time.Time) (*share.LinkResult, error) {
			attempts++
			tokens = append(tokens, token)
			if attempts == 1 {
				return nil, share.ErrTokenCollision
			}
			return &share.LinkResult{UUID: linkUUID, Token: token, Created: true}, nil
		},
	}
	auditRepo := &FakeAuditRepo{}

	svc := newShareService(fileRepo, shareRepo, userRepo, auditRepo)
	res, err := svc.CreateOrUpdateLink(context.Background(), uuid.New(), ownerUUID, nil)
	require.NoError(t, err)

	require.Equal(t, 2, attempts)
	assert.NotEqual(t, tokens[0], tokens[1])
	assert.True(t, res.Created)
	assert.Equal(t, []audit.Action{audit.ActionShareLink}, auditRepo.Recorded)
}

func TestShareService_CreateOrUpdateLink_ReissueKeepsToken(t *testing.T) {
	ownerUUID := uuid.New()

	userRepo := internalIDsFixture(map[user.UUID]user.ID{ownerUUID: 1})
	fileRepo := &FakeFileRepo{
		FetchInternalIDFunc: func(ctx context.Context, id uuid.UUID) (file.ID, error) {
			return 10, nil
		},
	}
	shareRepo := &FakeShareRepo{
		UpsertLinkFunc: func(ctx context.Context, fileID file.ID, ownerID user.ID, token string, expiresAt *time.Time) (*share.LinkResult, error) {
			// the store converges onto the existing row
			return &share.LinkResult{UUID: uuid.New(), Token: "stored-token", Created: false}, nil
		},
	}
	auditRepo := &FakeAuditRepo{}

	svc := newShareService(fileRepo, shareRepo, userRepo, auditRepo)
	res, err := svc.CreateOrUpdateLink(context.Background(), uuid.New(), ownerUUID, nil)
	require.NoError(t, err)

	assert.Equal(t, "stored-token", res.Token)
	assert.False(t, res.Created)
	assert.Equal(t, []audit.Action{audit.ActionShareLinkUpd}, auditRepo.Recorded)
}

func TestShareService_DeleteShare_ScopedToOwner(t *testing.T) {
	ownerUUID := uuid.New()
	shareUUID := uuid.New()

	userRepo := internalIDsFixture(map[user.UUID]user.ID{ownerUUID: 1})

	var gotOwner user.ID
	shareRepo := &FakeShareRepo{
		DeleteShareFunc: func(ctx context.Context, id uuid.UUID, ownerID user.ID) error {
			gotOwner = ownerID
			return nil
		},
	}

	svc := newShareService(&FakeFileRepo{}, shareRepo, userRepo, &FakeAuditRepo{})
	require.NoError(t, svc.DeleteShare(context.Background(), shareUUID, ownerUUID))
	assert.Equal(t, user.ID(1), gotOwner)
}
