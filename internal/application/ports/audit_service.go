package ports

import (
	"context"

	"github.com/google/uuid"

	"file-share-api/internal/domain/audit"
)

type AuditService interface {
	FindFileAudit(ctx context.Context, fileUUID uuid.UUID) (audit.Records, error)
}
