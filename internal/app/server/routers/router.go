package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Leomv55/vms/internal/app/server/handlers/order"
	"github.com/Leomv55/vms/internal/app/server/handlers/vendor"
	"github.com/Leomv55/vms/internal/app/server/middlewares"
	"github.com/Leomv55/vms/internal/app/pkg/logger"
	"github.com/Leomv55/vms/internal/app/pkg/metrics"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
// /health 与 /metrics 不经过认证，业务接口统一走令牌认证
func SetupRoutes(
	vendorHandler *vendor.VendorHandler,
	orderHandler *order.OrderHandler,
	log logger.Logger,
	stats *metrics.Metrics,
	authToken string,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log, stats))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "vms",
			"message": "Service is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(middlewares.TokenAuth(authToken))
	{
		vendors := v1.Group("/vendors")
		{
			vendors.POST("", vendorHandler.Create)
			vendors.GET("", vendorHandler.List)
			vendors.GET("/:id", vendorHandler.Get)
			vendors.PUT("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
			vendors.GET("/:id/performance", vendorHandler.Performance)
			vendors.GET("/:id/history", vendorHandler.History)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id", orderHandler.Update)
			orders.DELETE("/:id", orderHandler.Delete)
			orders.POST("/:id/acknowledge", orderHandler.Acknowledge)
		}
	}

	return r
}
