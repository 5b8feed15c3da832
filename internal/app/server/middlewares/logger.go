package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leomv55/vms/internal/app/pkg/logger"
	"github.com/Leomv55/vms/internal/app/pkg/metrics"
)

// Logger 请求日志中间件，为每个请求生成 request_id 并记录访问日志
func Logger(log logger.Logger, stats *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		if stats != nil {
			stats.HTTPRequests.WithLabelValues(c.Request.Method, c.FullPath(), strconv.Itoa(status)).Inc()
		}
		log.Infof(ctx, "%s %s status=%d latency=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
