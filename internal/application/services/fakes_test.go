package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"file-share-api/internal/domain/audit"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
	"file-share-api/internal/infrastructure/mq"
)

var errFakeNotUsed = errors.New("not used")

type FakeUserRepo struct {
	FetchUserByUUIDFunc  func(ctx context.Context, uuid user.UUID) (*user.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FetchUsersExceptFunc func(ctx context.Context, id user.ID) (user.Users, error)
	CreateUserFunc       func(ctx context.Context, req user.User) (*user.User, error)
	FetchInternalIDFunc  func(ctx context.Context, uuid user.UUID) (user.ID, error)
}

func (f *FakeUserRepo) FetchUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	if f.FetchUserByUUIDFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchUserByUUIDFunc(ctx, uuid)
}
func (f *FakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) FetchUsersExcept(ctx context.Context, id user.ID) (user.Users, error) {
	if f.FetchUsersExceptFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchUsersExceptFunc(ctx, id)
}
func (f *FakeUserRepo) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepo) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	if f.FetchInternalIDFunc == nil {
		return 0, errFakeNotUsed
	}
	return f.FetchInternalIDFunc(ctx, uuid)
}

type FakeFileRepo struct {
	CreateFileFunc           func(ctx context.Context, ownerID user.ID, req *file.File) (*file.File, error)
	FetchFileByUUIDFunc      func(ctx context.Context, uuid uuid.UUID) (*file.File, error)
	FetchFilesByOwnerFunc    func(ctx context.Context, ownerID user.ID) (file.Files, error)
	FetchFilesSharedWithFunc func(ctx context.Context, userID user.ID) (file.Files, error)
	FetchOwnerIDFunc         func(ctx context.Context, uuid uuid.UUID) (user.ID, error)
	FetchInternalIDFunc      func(ctx context.Context, uuid uuid.UUID) (file.ID, error)
	DeleteFileFunc           func(ctx context.Context, id file.ID) error
}

func (f *FakeFileRepo) CreateFile(ctx context.Context, ownerID user.ID, req *file.File) (*file.File, error) {
	if f.CreateFileFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.CreateFileFunc(ctx, ownerID, req)
}
func (f *FakeFileRepo) FetchFileByUUID(ctx context.Context, id uuid.UUID) (*file.File, error) {
	if f.FetchFileByUUIDFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchFileByUUIDFunc(ctx, id)
}
func (f *FakeFileRepo) FetchFilesByOwner(ctx context.Context, ownerID user.ID) (file.Files, error) {
	if f.FetchFilesByOwnerFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchFilesByOwnerFunc(ctx, ownerID)
}
func (f *FakeFileRepo) FetchFilesSharedWith(ctx context.Context, userID user.ID) (file.Files, error) {
	if f.FetchFilesSharedWithFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchFilesSharedWithFunc(ctx, userID)
}
func (f *FakeFileRepo) FetchOwnerID(ctx context.Context, id uuid.UUID) (user.ID, error) {
	if f.FetchOwnerIDFunc == nil {
		return 0, errFakeNotUsed
	}
	return f.FetchOwnerIDFunc(ctx, id)
}
func (f *FakeFileRepo) FetchInternalID(ctx context.Context, id uuid.UUID) (file.ID, error) {
	if f.FetchInternalIDFunc == nil {
		return 0, errFakeNotUsed
	}
	return f.FetchInternalIDFunc(ctx, id)
}
func (f *FakeFileRepo) DeleteFile(ctx context.Context, id file.ID) error {
	if f.DeleteFileFunc == nil {
		return errFakeNotUsed
	}
	return f.DeleteFileFunc(ctx, id)
}

type FakeShareRepo struct {
	UpsertGrantFunc       func(ctx context.Context, fileID file.ID, ownerID, targetID user.ID, expiresAt *time.Time) (*share.GrantResult, error)
	UpsertLinkFunc        func(ctx context.Context, fileID file.ID, ownerID user.ID, token string, expiresAt *time.Time) (*share.LinkResult, error)
	FetchActiveGrantFunc  func(ctx context.Context, fileID file.ID, userID user.ID) (*share.Share, error)
	FetchLinkByTokenFunc  func(ctx context.Context, token string) (*share.Link, error)
	FetchSharesByFileFunc func(ctx context.Context, fileID file.ID) (share.Shares, error)
	DeleteShareFunc       func(ctx context.Context, uuid uuid.UUID, ownerID user.ID) error
}

func (f *FakeShareRepo) UpsertGrant(ctx context.Context, fileID file.ID, ownerID, targetID user.ID, expiresAt *time.Time) (*share.GrantResult, error) {
	if f.UpsertGrantFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.UpsertGrantFunc(ctx, fileID, ownerID, targetID, expiresAt)
}
func (f *FakeShareRepo) UpsertLink(ctx context.Context, fileID file.ID, ownerID user.ID, token string, expiresAt *time.Time) (*share.LinkResult, error) {
	if f.UpsertLinkFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.UpsertLinkFunc(ctx, fileID, ownerID, token, expiresAt)
}
func (f *FakeShareRepo) FetchActiveGrant(ctx context.Context, fileID file.ID, userID user.ID) (*share.Share, error) {
	if f.FetchActiveGrantFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchActiveGrantFunc(ctx, fileID, userID)
}
func (f *FakeShareRepo) FetchLinkByToken(ctx context.Context, token string) (*share.Link, error) {
	if f.FetchLinkByTokenFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchLinkByTokenFunc(ctx, token)
}
func (f *FakeShareRepo) FetchSharesByFile(ctx context.Context, fileID file.ID) (share.Shares, error) {
	if f.FetchSharesByFileFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchSharesByFileFunc(ctx, fileID)
}
func (f *FakeShareRepo) DeleteShare(ctx context.Context, id uuid.UUID, ownerID user.ID) error {
	if f.DeleteShareFunc == nil {
		return errFakeNotUsed
	}
	return f.DeleteShareFunc(ctx, id, ownerID)
}

// FakeAuditRepo records appended entries for assertions.
type FakeAuditRepo struct {
	RecordFunc      func(ctx context.Context, fileID file.ID, actorID user.ID, action audit.Action, role share.Role) error
	FetchByFileFunc func(ctx context.Context, fileID file.ID) (audit.Records, error)

	Recorded []audit.Action
}

func (f *FakeAuditRepo) Record(ctx context.Context, fileID file.ID, actorID user.ID, action audit.Action, role share.Role) error {
	f.Recorded = append(f.Recorded, action)
	if f.RecordFunc == nil {
		return nil
	}
	return f.RecordFunc(ctx, fileID, actorID, action, role)
}
func (f *FakeAuditRepo) FetchByFile(ctx context.Context, fileID file.ID) (audit.Records, error) {
	if f.FetchByFileFunc == nil {
		return nil, errFakeNotUsed
	}
	return f.FetchByFileFunc(ctx, fileID)
}

type FakeBlobStorage struct {
	PutObjectFunc    func(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetObjectFunc    func(ctx context.Context, key string) (io.ReadCloser, error)
	RemoveObjectFunc func(ctx context.Context, key string) error

	Removed []string
}

func (f *FakeBlobStorage) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if f.PutObjectFunc == nil {
		return nil
	}
	return f.PutObjectFunc(ctx, key, reader, size, contentType)
}
func (f *FakeBlobStorage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	if f.GetObjectFunc == nil {
		return io.NopCloser(strings.NewReader("object-bytes")), nil
	}
	return f.GetObjectFunc(ctx, key)
}
func (f *FakeBlobStorage) RemoveObject(ctx context.Context, key string) error {
	f.Removed = append(f.Removed, key)
	if f.RemoveObjectFunc == nil {
		return nil
	}
	return f.RemoveObjectFunc(ctx, key)
}
func (f *FakeBlobStorage) GetBucket() string { return "test-bucket" }

type FakeRabbitMQ struct {
	in chan mq.Event
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 16)}
}

func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}
