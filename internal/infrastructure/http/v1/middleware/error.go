package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adboard/internal/core/apperror"
	"adboard/pkg/logger"
)

// ErrorRenderer is the single place errors become response bodies.
// Validation failures render the field-to-messages map directly; every
// other error renders as {"error": message}.
func ErrorRenderer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			logger.Error(c.Request.Context(), "unhandled error",
				"path", c.Request.URL.Path, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if appErr.HTTPStatus >= 500 {
			logger.Error(c.Request.Context(), "internal error",
				"path", c.Request.URL.Path, "code", appErr.Code, "error", appErr)
			c.JSON(appErr.HTTPStatus, gin.H{"error": "Internal server error"})
			return
		}

		if len(appErr.Fields) > 0 {
			c.JSON(appErr.HTTPStatus, appErr.Fields)
			return
		}

		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
	}
}
