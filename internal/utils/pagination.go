package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPageParam extracts the 1-based page query parameter. Missing defaults
// to 1; anything unparseable or below 1 reports false.
func GetPageParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
