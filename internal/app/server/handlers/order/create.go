package order

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/domains/apimodel/request"
	"github.com/Leomv55/vms/internal/app/domains/apimodel/response"
	"github.com/Leomv55/vms/internal/app/pkg/ginx"
)

// Create 创建采购订单接口
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(
		c.Request.Context(),
		req.PONumber,
		req.VendorID,
		req.OrderDate,
		req.DeliveryDate,
		req.Items,
		req.Quantity,
	)
	if err != nil {
		log.Printf("[ERROR] create order failed: %v", err)
		ginx.FromError(c, err)
		return
	}

	ginx.Created(c, response.FromOrderEntity(order))
}
