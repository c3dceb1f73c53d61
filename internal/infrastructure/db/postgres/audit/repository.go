package audit

import (
	"context"
	"fmt"

	"file-share-api/internal/domain/audit"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
	"file-share-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) audit.Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(
	ctx context.Context,
	fileID file.ID,
	actorID user.ID,
	action audit.Action,
	role share.Role,
) error {
	if _, err := r.db.Exec(
		ctx,
		InsertRecord,
		uint64(fileID), uint64(actorID), string(action), string(role),
	); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}

	return nil
}

func (r *Repository) FetchByFile(ctx context.Context, fileID file.ID) (audit.Records, error) {
	rows, err := r.db.Query(ctx, SelectRecordsByFile, uint64(fileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs Records
	for rows.Next() {
		rec := new(Record)

		if err = rows.Scan(
			&rec.ID,
			&rec.FileID,
			&rec.Action,
			&rec.Role,

			&rec.ActorUUID,
			&rec.ActorUsername,
			&rec.ActorEmail,

			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&recs), nil
}
