package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/pkg/ginx"
)

// TokenAuth 令牌认证中间件
// 请求须携带 "Authorization: Token <key>"，与配置的服务令牌比对；
// 未配置令牌时放行所有请求（开发环境）
func TokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		const prefix = "Token "
		if !strings.HasPrefix(header, prefix) || strings.TrimPrefix(header, prefix) != token {
			ginx.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}

		c.Next()
	}
}
