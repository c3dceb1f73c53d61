package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-share-api/internal/application/ports"
	"file-share-api/internal/infrastructure/jwt"
	userDTO "file-share-api/internal/interface/api/rest/dto/user"
	"file-share-api/internal/interface/api/rest/middleware"
)

type UserController struct {
	logger      *zap.Logger
	userService ports.UserService
}

func NewUserController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		logger:      logger,
		userService: userService,
	}

	r.GET(RouteUsers, middleware.AuthMiddleware(jwtService), uc.GetShareTargetsHandler)

	return uc
}

// GetShareTargetsHandler lists every user the caller can share with,
// which is everyone except the caller.
func (uc *UserController) GetShareTargetsHandler(c *gin.Context) {
	actorUUID, ok := middleware.ActorUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	users, err := uc.userService.FindShareTargets(c.Request.Context(), actorUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindShareTargets() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, userDTO.ResponseData{
		Data: userDTO.ToResponseUsers(users),
	})
}
