package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// jsonError sends the standard JSON error object.
func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// parseID parses a path id. Malformed ids are reported as 404 by the
// callers, matching the invalid-identifier contract.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
