package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/log"
)

// Logger writes one structured line per request.
func Logger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(begin),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "err", c.Errors.String())
		}
		logger.Log(kv...)
	}
}
