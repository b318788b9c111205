package middleware

import (
	"fmt"
	"net/http"

	"github.com/ZHABODAV/fleet-list/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/log"
)

// ErrorHandler middleware recovers from panics and answers with the API error envelope
func ErrorHandler(logger log.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log("path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))

		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
