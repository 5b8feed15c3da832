package order

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/domains/apimodel/response"
	"github.com/Leomv55/vms/internal/app/pkg/ginx"
)

// Acknowledge godoc
// @Summary      供应商确认订单
// @Description  设置订单确认时间为当前时间，仅首次调用生效，重复调用原样返回；
// @Description  确认成功后同步重算该供应商的平均响应时间
// @Tags         orders
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "确认成功"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Security     ApiKeyAuth
// @Router       /orders/{id}/acknowledge [post]
func (h *OrderHandler) Acknowledge(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orderService.AcknowledgeOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[ERROR] acknowledge order failed: %v", err)
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
