package handlers

import (
	"haviaa/models"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger set by middleware.RequestLogger,
// falling back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentUser returns the user loaded by the session middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(utils.CtxUser)
	if !exists {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

func currentSessionID(c *gin.Context) string {
	return c.GetString(utils.CtxSessionID)
}
