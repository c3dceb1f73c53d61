package share

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
	"file-share-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) share.Repository {
	return &Repository{db: db}
}

func (r *Repository) UpsertGrant(
	ctx context.Context,
	fileID file.ID,
	ownerID, targetID user.ID,
	expiresAt *time.Time,
) (*share.GrantResult, error) {
	res := new(share.GrantResult)

	err := r.db.QueryRow(
		ctx,
		UpsertGrant,
		uint64(fileID), uint64(ownerID), uint64(targetID), expiresAt,
	).Scan(
		&res.UUID,
		&res.Created,
	)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) UpsertLink(
	ctx context.Context,
	fileID file.ID,
	ownerID user.ID,
	token string,
	expiresAt *time.Time,
) (*share.LinkResult, error) {
	res := new(share.LinkResult)

	err := r.db.QueryRow(
		ctx,
		UpsertLink,
		uint64(fileID), uint64(ownerID), token, expiresAt,
	).Scan(
		&res.UUID,
		&res.Token,
		&res.Created,
	)
	if err != nil {
		// the conflict target absorbs the per-file constraint, so a
		// surviving unique violation can only be the global token index
		if postgres.UniqueConstraint(err) == tokenUniqueConstraint {
			return nil, fmt.Errorf("token %q: %w", token, share.ErrTokenCollision)
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) FetchActiveGrant(ctx context.Context, fileID file.ID, userID user.ID) (*share.Share, error) {
	s := new(Share)
	err := r.db.QueryRow(ctx, SelectActiveGrant, uint64(fileID), uint64(userID)).Scan(
		&s.ID,
		&s.UUID,
		&s.FileID,
		&s.OwnerID,
		&s.SharedWithUserID,
		&s.ShareToken,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) FetchLinkByToken(ctx context.Context, token string) (*share.Link, error) {
	l := new(Link)
	err := r.db.QueryRow(ctx, SelectLinkByToken, token).Scan(
		&l.UUID,
		&l.FileID,
		&l.FileUUID,
		&l.SharedWithUserID,
		&l.ShareToken,
		&l.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &share.Link{
		UUID:         l.UUID,
		FileID:       file.ID(l.FileID),
		FileUUID:     l.FileUUID,
		TargetUserID: (*user.ID)(l.SharedWithUserID),
		Token:        l.ShareToken,
		ExpiresAt:    l.ExpiresAt,
	}, nil
}

func (r *Repository) FetchSharesByFile(ctx context.Context, fileID file.ID) (share.Shares, error) {
	rows, err := r.db.Query(ctx, SelectSharesByFile, uint64(fileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Shares
	for rows.Next() {
		s := new(Share)

		if err = rows.Scan(
			&s.ID,
			&s.UUID,
			&s.FileID,
			&s.OwnerID,
			&s.SharedWithUserID,

			&s.TargetUsername,
			&s.TargetEmail,
			&s.ShareToken,

			&s.ExpiresAt,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}

		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ss), nil
}

func (r *Repository) DeleteShare(ctx context.Context, id uuid.UUID, ownerID user.ID) error {
	tag, err := r.db.Exec(ctx, DeleteShareByUUID, id.String(), uint64(ownerID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share %s: %w", id.String(), share.ErrShareNotFound)
	}

	return nil
}
