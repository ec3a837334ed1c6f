package middleware

import (
	"net/http"

	ierr "charty-dashboard-backend/internal/errors"
	"charty-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a 500 and logs them.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong."})
	})
}

// ErrorHandler renders the last error a handler attached with c.Error.
// The status comes from the error's marker; the message from its hint.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		if status >= http.StatusInternalServerError {
			log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
		}
		c.JSON(status, gin.H{"message": ierr.HintOf(err, http.StatusText(status))})
	}
}
