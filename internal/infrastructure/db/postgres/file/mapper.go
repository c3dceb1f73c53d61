package file

import (
	domain "file-share-api/internal/domain/file"
	"file-share-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:      domain.ID(model.ID),
		UUID:    model.UUID,
		OwnerID: user.ID(model.OwnerID),

		OriginalName: model.OriginalName,
		FileType:     model.FileType,
		SizeBytes:    model.SizeBytes,
		Bucket:       model.Bucket,
		StorageKey:   model.StorageKey,

		CreatedAt: model.CreatedAt,
		SharedAt:  model.SharedAt,
	}
	if model.OwnerName != nil {
		f.OwnerName = *model.OwnerName
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
