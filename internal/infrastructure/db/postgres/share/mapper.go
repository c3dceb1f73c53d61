package share

import (
	domain "file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

func fromDBModel(model *Share) *domain.Share {
	var s = &domain.Share{
		UUID:    model.UUID,
		OwnerID: user.ID(model.OwnerID),

		TargetUserID:   (*user.ID)(model.SharedWithUserID),
		TargetUsername: model.TargetUsername,
		TargetEmail:    model.TargetEmail,
		Token:          model.ShareToken,

		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}

	return s
}

func fromDBModels(models *Shares) domain.Shares {
	ss := make(domain.Shares, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}
