package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string    `json:"message"`
	Code    ErrorKind `json:"code,omitempty"`
	Details string    `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError answers with the status and code derived from a service error.
// Unclassified errors are logged and hidden behind a generic message.
func RespondError(c *gin.Context, message string, err error) {
	status := HTTPStatus(err)
	kind := KindOf(err)
	if kind == "" {
		GetLogger().Error(message, zap.Error(err))
		c.JSON(status, ErrorResponse{Message: message})
		return
	}
	GetLogger().Debug(message, zap.String("code", string(kind)), zap.Error(err))
	c.JSON(status, ErrorResponse{Message: message, Code: kind, Details: err.Error()})
}
