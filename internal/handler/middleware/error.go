package middleware

import (
	"log/slog"
	"net/http"

	"stokship/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors left on the context by handlers that did not
// write a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		// newest error wins
		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status, msg := httperr.Status(last.Err)
		if status == http.StatusServiceUnavailable {
			c.Header("Retry-After", httperr.RetryAfterSeconds)
		}
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"route", c.FullPath(),
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
