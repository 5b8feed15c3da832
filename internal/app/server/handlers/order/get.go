package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Leomv55/vms/internal/app/domains/apimodel/response"
	"github.com/Leomv55/vms/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取采购订单详情
// @Tags         orders
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "查询成功"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Security     ApiKeyAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}

// List 获取订单列表，支持按供应商过滤
// GET /api/v1/orders?vendor_id=1&page=1&limit=20
func (h *OrderHandler) List(c *gin.Context) {
	var vendorID int64
	if v := c.Query("vendor_id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			ginx.BadRequest(c, "invalid vendor_id")
			return
		}
		vendorID = parsed
	}

	page, limit := ginx.Pagination(c)

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), vendorID, page, limit)
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders, total))
}
