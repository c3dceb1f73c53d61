package audit

import (
	"file-share-api/internal/domain/audit"
)

func ToResponseRecord(rDomain audit.Record) Record {
	return Record{
		Action:    string(rDomain.Action),
		Role:      string(rDomain.Role),
		Username:  rDomain.ActorUsername,
		Email:     rDomain.ActorEmail,
		CreatedAt: rDomain.CreatedAt,
	}
}

func ToResponseRecords(rsDomain audit.Records) Records {
	rs := make(Records, len(rsDomain))
	for idx, r := range rsDomain {
		rs[idx] = ToResponseRecord(*r)
	}

	return rs
}
