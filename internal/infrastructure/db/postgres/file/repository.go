package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/user"
	"file-share-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFile(ctx context.Context, ownerID user.ID, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		ownerID, req.OriginalName, req.FileType, req.SizeBytes, req.Bucket, req.StorageKey,
	).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,

		&f.OriginalName,
		&f.FileType,
		&f.SizeBytes,
		&f.Bucket,
		&f.StorageKey,

		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFileByUUID(ctx context.Context, id uuid.UUID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByUUID, id.String()).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,

		&f.OriginalName,
		&f.FileType,
		&f.SizeBytes,
		&f.Bucket,
		&f.StorageKey,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("file %s: %w", id.String(), file.ErrFileNotFound)
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFilesByOwner(ctx context.Context, ownerID user.ID) (file.Files, error) {
	return r.fetchFiles(ctx, SelectFilesByOwner, uint64(ownerID), false)
}

func (r *Repository) FetchFilesSharedWith(ctx context.Context, userID user.ID) (file.Files, error) {
	return r.fetchFiles(ctx, SelectFilesSharedWith, uint64(userID), true)
}

func (r *Repository) fetchFiles(ctx context.Context, query string, arg uint64, enriched bool) (file.Files, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		dest := []any{
			&f.ID,
			&f.UUID,
			&f.OwnerID,

			&f.OriginalName,
			&f.FileType,
			&f.SizeBytes,
			&f.Bucket,
			&f.StorageKey,

			&f.CreatedAt,
		}
		if enriched {
			dest = append(dest, &f.OwnerName, &f.SharedAt)
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) FetchOwnerID(ctx context.Context, id uuid.UUID) (user.ID, error) {
	var ownerID uint64
	if err := r.db.QueryRow(ctx, SelectOwnerIDByUUID, id.String()).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("file %s: %w", id.String(), file.ErrFileNotFound)
		}
		return 0, err
	}

	return user.ID(ownerID), nil
}

func (r *Repository) FetchInternalID(ctx context.Context, id uuid.UUID) (file.ID, error) {
	var internalID uint64
	if err := r.db.QueryRow(ctx, SelectIDByUUID, id.String()).Scan(&internalID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("file %s: %w", id.String(), file.ErrFileNotFound)
		}
		return 0, err
	}

	return file.ID(internalID), nil
}

func (r *Repository) DeleteFile(ctx context.Context, id file.ID) error {
	_, err := r.db.Exec(ctx, DeleteFileByID, uint64(id))
	return err
}
