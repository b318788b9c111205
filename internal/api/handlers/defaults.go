package handlers

import (
	"net/http"

	"github.com/ZHABODAV/fleet-list/internal/config"

	"github.com/gin-gonic/gin"
)

// GetDefaults handles GET /api/v1/defaults
func GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"config": FromConfig(config.Default())})
}
