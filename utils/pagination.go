package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination membaca query page & limit dengan default page=1, limit=10
func ParsePagination(c *gin.Context) (page int, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
