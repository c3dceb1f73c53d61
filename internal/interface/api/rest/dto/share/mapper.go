package share

import (
	"file-share-api/internal/domain/share"
)

func ToResponseShare(sDomain share.Share) Share {
	return Share{
		UUID:       sDomain.UUID,
		Username:   sDomain.TargetUsername,
		Email:      sDomain.TargetEmail,
		ShareToken: sDomain.Token,
		ExpiresAt:  sDomain.ExpiresAt,
		CreatedAt:  sDomain.CreatedAt,
	}
}

func ToResponseShares(ssDomain share.Shares) Shares {
	ss := make(Shares, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseShare(*s)
	}

	return ss
}
