package order

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/domains/apimodel/request"
	"github.com/Leomv55/vms/internal/app/domains/apimodel/response"
	"github.com/Leomv55/vms/internal/app/pkg/ginx"
)

// Update 更新采购订单（部分字段），受影响的绩效指标同步重算
// PUT /api/v1/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	update, err := req.ToOrderUpdate()
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, update)
	if err != nil {
		log.Printf("[ERROR] update order failed: %v", err)
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
