package order

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/pkg/ginx"
)

// Delete 删除采购订单
// DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		log.Printf("[ERROR] delete order failed: %v", err)
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}
