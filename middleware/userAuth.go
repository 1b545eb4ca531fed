package middleware

import (
	"net/http"
	"strings"

	"haviaa/models"
	"haviaa/services/user"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware resolves the bearer token to its session and loads the
// session's user into the context under utils.CtxSessionID and utils.CtxUser.
func JWTAuthUserMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		sessionID, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			zap.L().Debug("Rejected session token", zap.Error(err))
			abortUnauthorized(c, "Invalid token")
			return
		}

		usr, err := userSvc.Current(c.Request.Context(), sessionID)
		if err != nil {
			if utils.IsKind(err, utils.KindUnauthorized) {
				abortUnauthorized(c, "Session expired")
				return
			}
			utils.RespondError(c, "Failed to load session", err)
			c.Abort()
			return
		}

		c.Set(utils.CtxSessionID, sessionID)
		c.Set(utils.CtxUser, usr)
		c.Next()
	}
}

// RequireCompleteProfile blocks users whose profile is missing contact details.
// It must run after JWTAuthUserMiddleware.
func RequireCompleteProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get(utils.CtxUser)
		usr, ok := v.(*models.User)
		if !ok || usr == nil {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}
		if !usr.HasCompleteProfile() {
			c.AbortWithStatusJSON(http.StatusBadRequest, utils.ErrorResponse{
				Message: "Profile incomplete",
				Code:    utils.KindValidation,
				Details: "add your phone number and address before hiring",
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
		Message: msg,
		Code:    utils.KindUnauthorized,
	})
}
