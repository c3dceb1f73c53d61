package services

import (
	"context"

	"github.com/google/uuid"

	"file-share-api/internal/application/ports"
	domain "file-share-api/internal/domain/audit"
	"file-share-api/internal/domain/file"
)

type AuditService struct {
	fileRepository  file.Repository
	auditRepository domain.Repository
}

func NewAuditService(
	fileRepository file.Repository,
	auditRepository domain.Repository,
) ports.AuditService {
	return &AuditService{
		fileRepository:  fileRepository,
		auditRepository: auditRepository,
	}
}

func (as *AuditService) FindFileAudit(ctx context.Context, fileUUID uuid.UUID) (domain.Records, error) {
	fileID, err := as.fileRepository.FetchInternalID(ctx, fileUUID)
	if err != nil {
		return nil, err
	}

	return as.auditRepository.FetchByFile(ctx, fileID)
}
