package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-share-api/internal/application/ports"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/infrastructure/jwt"
	auditDTO "file-share-api/internal/interface/api/rest/dto/audit"
	fileDTO "file-share-api/internal/interface/api/rest/dto/file"
	"file-share-api/internal/interface/api/rest/middleware"
)

const (
	// 500MB
	maxSize  = int64(500 << 20)
	maxFiles = 10
)

type FileController struct {
	logger       *zap.Logger
	fileService  ports.FileService
	auditService ports.AuditService
}

func NewFileController(
	r *gin.Engine,
	logger *zap.Logger,
	fileService ports.FileService,
	auditService ports.AuditService,
	accessService ports.AccessService,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		logger:       logger,
		fileService:  fileService,
		auditService: auditService,
	}

	authn := middleware.AuthMiddleware(jwtService)
	access := middleware.FileAccess(accessService, logger)
	byToken := middleware.FileAccessByToken(accessService, logger)

	r.POST(RouteFileUpload, authn, fc.UploadHandler)
	r.GET(RouteMyFiles, authn, fc.GetMyFilesHandler)
	r.GET(RouteSharedWithMe, authn, fc.GetSharedWithMeHandler)
	r.GET(RouteFileDownload, authn, access, fc.DownloadHandler)
	r.DELETE(RouteFile, authn, fc.DeleteFileHandler)
	r.GET(RouteFileAudit, authn, access, middleware.RequireOwner(), fc.GetAuditHandler)
	r.GET(RouteTokenInfo, authn, byToken, fc.GetTokenInfoHandler)
	r.GET(RouteTokenDownload, authn, byToken, fc.DownloadHandler)

	return fc
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form is required"})
		return
	}

	fhs := form.File["files"]
	if len(fhs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}
	if len(fhs) > maxFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many files in one request"})
		return
	}
	for _, fh := range fhs {
		if fh.Size <= 0 || fh.Size > maxSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
			return
		}
	}

	files, err := fc.fileService.CreateFiles(c.Request.Context(), actorUUID, fhs)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload files"},
		)
		fc.logger.Error("CreateFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFiles(files),
	})
}

func (fc *FileController) GetMyFilesHandler(c *gin.Context) {
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	files, err := fc.fileService.FindMyFiles(c.Request.Context(), actorUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindMyFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFiles(files),
	})
}

func (fc *FileController) GetSharedWithMeHandler(c *gin.Context) {
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	files, err := fc.fileService.FindSharedFiles(c.Request.Context(), actorUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindSharedFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFiles(files),
	})
}

// DownloadHandler streams the file body. It serves both direct and
// share-link downloads; the access middlewares put the resolved role
// and file uuid into the context.
func (fc *FileController) DownloadHandler(c *gin.Context) {
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	fileUUID := c.MustGet(middleware.CtxFileUUID).(uuid.UUID)
	role := c.MustGet(middleware.CtxFileRole).(share.Role)

	f, body, err := fc.fileService.DownloadFile(c.Request.Context(), fileUUID, actorUUID, role)
	if err != nil {
		if errors.Is(err, file.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to download a file"},
		)
		fc.logger.Error("DownloadFile() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}
	defer body.Close()

	contentType := f.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(
		http.StatusOK,
		int64(f.SizeBytes),
		contentType,
		body,
		map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", f.OriginalName),
		},
	)
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	fileUUID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid UUID"})
		return
	}
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := fc.fileService.DeleteFile(c.Request.Context(), fileUUID, actorUUID); err != nil {
		switch {
		case errors.Is(err, file.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, share.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the file owner can delete a file"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete a file"})
			fc.logger.Error("DeleteFile() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

func (fc *FileController) GetAuditHandler(c *gin.Context) {
	fileUUID := c.MustGet(middleware.CtxFileUUID).(uuid.UUID)

	records, err := fc.auditService.FindFileAudit(c.Request.Context(), fileUUID)
	if err != nil {
		if errors.Is(err, file.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get the audit trail"},
		)
		fc.logger.Error("FindFileAudit() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}

	c.JSON(http.StatusOK, auditDTO.ResponseData{
		Data: auditDTO.ToResponseRecords(records),
	})
}

func (fc *FileController) GetTokenInfoHandler(c *gin.Context) {
	fileUUID := c.MustGet(middleware.CtxFileUUID).(uuid.UUID)

	f, err := fc.fileService.FindFileInfo(c.Request.Context(), fileUUID)
	if err != nil {
		if errors.Is(err, file.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get file info"},
		)
		fc.logger.Error("FindFileInfo() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(*f))
}
