package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-share-api/internal/application/ports"
	"file-share-api/internal/domain/file"
	"file-share-api/internal/domain/share"
	"file-share-api/internal/domain/user"
)

const (
	CtxFileRole = "fileRole"
	CtxFileUUID = "fileUUID"
)

// FileAccess resolves the authenticated user's role on the file named
// by the :file_id path param and stores it under CtxFileRole.
// Requests without any role never reach the handler.
func FileAccess(accessService ports.AccessService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileUUID, err := uuid.Parse(c.Param("file_id"))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusBadRequest,
				gin.H{"error": "file_id must be a valid UUID"},
			)
			return
		}

		actorUUID, ok := ActorUUID(c)
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		role, err := accessService.ResolveFileRole(c.Request.Context(), actorUUID, fileUUID)
		if err != nil {
			switch {
			case errors.Is(err, file.ErrFileNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "file not found"})
			case errors.Is(err, user.ErrUserNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check access"})
				logger.Error("ResolveFileRole() error", zap.Error(err), zap.Stringer("file_uuid", fileUUID))
			}
			return
		}
		if role == share.RoleNone {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "access denied"},
			)
			return
		}

		c.Set(CtxFileRole, role)
		c.Set(CtxFileUUID, fileUUID)

		c.Next()
	}
}

// RequireOwner runs after FileAccess on operations only the owner
// may perform.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := c.MustGet(CtxFileRole).(share.Role); !ok || role != share.RoleOwner {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "only the file owner can manage sharing"},
			)
			return
		}

		c.Next()
	}
}

// FileAccessByToken resolves the share link token from the :token path
// param and stores the resulting role and file under CtxFileRole and
// CtxFileUUID. Expired or unknown tokens read as not found.
func FileAccessByToken(accessService ports.AccessService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusBadRequest,
				gin.H{"error": "share token is required"},
			)
			return
		}

		actorUUID, ok := ActorUUID(c)
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		access, err := accessService.ResolveTokenRole(c.Request.Context(), actorUUID, token)
		if err != nil {
			switch {
			case errors.Is(err, share.ErrShareNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "share link not found or expired"})
			case errors.Is(err, share.ErrAccessDenied):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check access"})
				logger.Error("ResolveTokenRole() error", zap.Error(err))
			}
			return
		}

		c.Set(CtxFileRole, access.Role)
		c.Set(CtxFileUUID, access.FileUUID)

		c.Next()
	}
}

// ActorUUID returns the authenticated user's uuid set by AuthMiddleware.
func ActorUUID(c *gin.Context) (user.UUID, bool) {
	id, err := uuid.Parse(c.GetString(CtxUserID))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
