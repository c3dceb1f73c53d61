package audit

import (
	domain "file-share-api/internal/domain/audit"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
)

func fromDBModel(model *Record) *domain.Record {
	var rec = &domain.Record{
		ID:     model.ID,
		FileID: file.ID(model.FileID),
		Action: domain.Action(model.Action),
		Role:   share.Role(model.Role),

		ActorUUID:     model.ActorUUID,
		ActorUsername: model.ActorUsername,
		ActorEmail:    model.ActorEmail,

		CreatedAt: model.CreatedAt,
	}

	return rec
}

func fromDBModels(models *Records) domain.Records {
	recs := make(domain.Records, len(*models))
	for idx, r := range *models {
		recs[idx] = fromDBModel(r)
	}

	return recs
}
