package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// FromError 按业务错误类型映射 HTTP 响应
// NotFound → 404，Validation → 400，Conflict → 409，其余 → 500
func FromError(c *gin.Context, err error) {
	switch {
	case errorx.IsNotFound(err):
		NotFound(c, err.Error())
	case errorx.IsValidation(err):
		BadRequest(c, err.Error())
	case errorx.IsConflict(err):
		Conflict(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}
