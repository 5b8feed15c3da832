package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination 解析分页查询参数，缺省 page=1 limit=20，上限 100
func Pagination(c *gin.Context) (page, limit int) {
	page, limit = 1, 20
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
