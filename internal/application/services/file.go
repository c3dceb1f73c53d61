package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"file-share-api/internal/application/ports"
	"file-share-api/internal/domain/audit"
	domain "file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

const maxBaseNameLen = 100

type FileService struct {
	storage         ports.BlobStorage
	fileRepository  domain.Repository
	userRepository  user.Repository
	auditRepository audit.Repository
	mCounter        *prometheus.CounterVec
}

func NewFileService(
	storage ports.BlobStorage,
	fileRepository domain.Repository,
	userRepository user.Repository,
	auditRepository audit.Repository,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		storage:         storage,
		fileRepository:  fileRepository,
		userRepository:  userRepository,
		auditRepository: auditRepository,
		mCounter:        mCounter,
	}
}

// CreateFiles stores each upload in object storage, persists its
// metadata and appends an 'upload' audit entry attributed to the owner.
func (fs *FileService) CreateFiles(
	ctx context.Context,
	ownerUUID user.UUID,
	in []*multipart.FileHeader,
) (domain.Files, error) {
	ownerID, err := fs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	var created domain.Files
	for _, fh := range in {
		f := fs.fillMetaData(fh, ownerUUID)

		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		if err = fs.storage.PutObject(
			ctx, f.StorageKey, src, fh.Size, fh.Header.Get("Content-Type"),
		); err != nil {
			src.Close()
			return nil, err
		}
		src.Close()

		out, err := fs.fileRepository.CreateFile(ctx, ownerID, f)
		if err != nil {
			return nil, err
		}

		if err = fs.auditRepository.Record(
			ctx, out.ID, ownerID, audit.ActionUpload, share.RoleOwner,
		); err != nil {
			return nil, err
		}

		created = append(created, out)
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return created, nil
}

func (fs *FileService) FindMyFiles(ctx context.Context, ownerUUID user.UUID) (domain.Files, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	return fs.fileRepository.FetchFilesByOwner(ctx, id)
}

func (fs *FileService) FindSharedFiles(ctx context.Context, userUUID user.UUID) (domain.Files, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return fs.fileRepository.FetchFilesSharedWith(ctx, id)
}

func (fs *FileService) FindFileInfo(ctx context.Context, fileUUID uuid.UUID) (*domain.File, error) {
	return fs.fileRepository.FetchFileByUUID(ctx, fileUUID)
}

// DownloadFile appends the 'download' audit entry with the role the
// caller's access resolution produced, then opens the object stream.
func (fs *FileService) DownloadFile(
	ctx context.Context,
	fileUUID uuid.UUID,
	actorUUID user.UUID,
	role share.Role,
) (*domain.File, io.ReadCloser, error) {
	f, err := fs.fileRepository.FetchFileByUUID(ctx, fileUUID)
	if err != nil {
		return nil, nil, err
	}

	actorID, err := fs.userRepository.FetchInternalID(ctx, actorUUID)
	if err != nil {
		return nil, nil, err
	}

	if err = fs.auditRepository.Record(
		ctx, f.ID, actorID, audit.ActionDownload, role,
	); err != nil {
		return nil, nil, err
	}

	obj, err := fs.storage.GetObject(ctx, f.StorageKey)
	if err != nil {
		return nil, nil, err
	}

	fs.mCounter.WithLabelValues("files_downloaded_total").Inc()

	return f, obj, nil
}

// DeleteFile is owner-only. Deletion is not audited.
// TODO: record file deletion in the audit trail.
func (fs *FileService) DeleteFile(ctx context.Context, fileUUID uuid.UUID, actorUUID user.UUID) error {
	f, err := fs.fileRepository.FetchFileByUUID(ctx, fileUUID)
	if err != nil {
		return err
	}

	actorID, err := fs.userRepository.FetchInternalID(ctx, actorUUID)
	if err != nil {
		return err
	}
	if f.OwnerID != actorID {
		return fmt.Errorf("file %s: %w", fileUUID.String(), share.ErrAccessDenied)
	}

	if err = fs.storage.RemoveObject(ctx, f.StorageKey); err != nil {
		return err
	}

	return fs.fileRepository.DeleteFile(ctx, f.ID)
}

func (fs *FileService) fillMetaData(in *multipart.FileHeader, ownerUUID user.UUID) *domain.File {
	name := filepath.Base(sanitizeFileName(in.Filename))

	f := &domain.File{
		OriginalName: name,
		FileType:     strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."),
		SizeBytes:    uint64(in.Size),
		Bucket:       fs.storage.GetBucket(),
	}
	f.StorageKey = genStorageKey(name, ownerUUID)

	return f
}

// genStorageKey: "uploads/YYYY/MM/DD/<ts-nanosec>/<useruuid>/<filename>.ext"
func genStorageKey(fileName string, ownerUUID user.UUID) string {
	now := time.Now().UTC()
	return fmt.Sprintf(
		"uploads/%04d/%02d/%02d/%s/%s/%s",
		now.Year(), int(now.Month()), now.Day(),
		now.Format("20060102T150405.000000000Z"),
		strings.ToLower(strings.ReplaceAll(ownerUUID.String(), "-", "")),
		fileName,
	)
}

// sanitizeFileName makes the file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := path.Ext(s)
	base := strings.TrimSuffix(s, ext)
	ext = strings.ToLower(ext)

	// [a-z0-9], '-' and '_'; dot/space collapse to '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
