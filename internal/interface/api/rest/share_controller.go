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
	shareDTO "file-share-api/internal/interface/api/rest/dto/share"
	"file-share-api/internal/interface/api/rest/middleware"
	"file-share-api/internal/interface/api/rest/validator"
)

type ShareController struct {
	logger       *zap.Logger
	shareService ports.ShareService
}

func NewShareController(
	r *gin.Engine,
	logger *zap.Logger,
	shareService ports.ShareService,
	accessService ports.AccessService,
	jwtService *jwt.Service,
) *ShareController {
	sc := &ShareController{
		logger:       logger,
		shareService: shareService,
	}

	authn := middleware.AuthMiddleware(jwtService)
	access := middleware.FileAccess(accessService, logger)
	owner := middleware.RequireOwner()

	r.POST(RouteFileShare, authn, access, owner, sc.ShareHandler)
	r.POST(RouteFileShareLink, authn, access, owner, sc.ShareLinkHandler)
	r.GET(RouteFileShares, authn, access, owner, sc.GetSharesHandler)
	r.DELETE(RouteShareDelete, authn, sc.DeleteShareHandler)

	return sc
}

// ShareHandler grants viewer access on a file to a batch of users.
// One bad target id does not abort the rest of the batch.
func (sc *ShareController) ShareHandler(c *gin.Context) {
	fileUUID := c.MustGet(middleware.CtxFileUUID).(uuid.UUID)
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req shareDTO.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	targets, err := validator.ValidateShareTargets(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	expiresAt, err := validator.ValidateExpiresAt(req.ExpiresAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := sc.shareService.ShareWithUsers(c.Request.Context(), fileUUID, actorUUID, targets, expiresAt)
	if err != nil {
		if errors.Is(err, share.ErrNothingShared) {
			c.JSON(http.StatusBadRequest, shareDTO.BatchResponse{
				Message:        "No shares created. Check that the user ids exist.",
				InvalidUserIDs: res.Invalid,
			})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to share a file"},
		)
		sc.logger.Error("ShareWithUsers() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}

	c.JSON(http.StatusOK, shareDTO.BatchResponse{
		Message:        "File shared successfully",
		SharesCreated:  len(res.Created),
		SharesUpdated:  len(res.Updated),
		InvalidUserIDs: res.Invalid,
	})
}

// ShareLinkHandler issues the file's anonymous share link, or updates
// its expiry when one already exists. The token survives re-issue.
func (sc *ShareController) ShareLinkHandler(c *gin.Context) {
	fileUUID := c.MustGet(middleware.CtxFileUUID).(uuid.UUID)
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req shareDTO.LinkRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(
				http.StatusBadRequest,
				gin.H{"error": "invalid json"},
			)
			return
		}
	}

	expiresAt, err := validator.ValidateExpiresAt(req.ExpiresAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := sc.shareService.CreateOrUpdateLink(c.Request.Context(), fileUUID, actorUUID, expiresAt)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a share link"},
		)
		sc.logger.Error("CreateOrUpdateLink() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}

	msg := "Share link updated"
	if res.Created {
		msg = "Share link created"
	}

	c.JSON(http.StatusOK, shareDTO.LinkResponse{
		Message:    msg,
		ShareToken: res.Token,
		ShareURL:   shareURL(c, res.Token),
		ExpiresAt:  expiresAt,
	})
}

func (sc *ShareController) GetSharesHandler(c *gin.Context) {
	fileUUID := c.MustGet(middleware.CtxFileUUID).(uuid.UUID)

	shares, err := sc.shareService.ListShares(c.Request.Context(), fileUUID)
	if err != nil {
		if errors.Is(err, file.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get shares"},
		)
		sc.logger.Error("ListShares() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
		return
	}

	c.JSON(http.StatusOK, shareDTO.ResponseData{
		Data: shareDTO.ToResponseShares(shares),
	})
}

// DeleteShareHandler revokes a grant or link. Only shares owned by the
// caller are visible to the delete; anything else reads as not found.
func (sc *ShareController) DeleteShareHandler(c *gin.Context) {
	shareUUID, err := uuid.Parse(c.Param("share_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "share_id must be a valid UUID"})
		return
	}
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := sc.shareService.DeleteShare(c.Request.Context(), shareUUID, actorUUID); err != nil {
		if errors.Is(err, share.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a share"},
		)
		sc.logger.Error("DeleteShare() error", zap.Error(err), zap.Stringer("share_uuid", shareUUID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Share removed successfully"})
}

func shareURL(c *gin.Context, token string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s%s/files/share/%s/download", scheme, c.Request.Host, RouteApiV1, token)
}
