package request

import (
	"encoding/json"
	"time"
)

// CreateOrderRequest 创建采购订单请求
type CreateOrderRequest struct {
	PONumber     string          `json:"po_number" example:"PO-20240101-001"` // 为空时自动生成
	VendorID     int64           `json:"vendor_id" binding:"required" example:"1"`
	OrderDate    time.Time       `json:"order_date" binding:"required"`
	DeliveryDate time.Time       `json:"delivery_date" binding:"required"`
	Items        json.RawMessage `json:"items"`
	Quantity     int             `json:"quantity" binding:"required,min=1" example:"10"`
}

// UpdateOrderRequest 更新采购订单请求，缺省字段不修改
// issue_date 创建后不可变，请求中出现即被拒绝
type UpdateOrderRequest struct {
	OrderDate          *time.Time      `json:"order_date"`
	DeliveryDate       *time.Time      `json:"delivery_date"`
	Items              json.RawMessage `json:"items"`
	Quantity           *int            `json:"quantity"`
	Status             *string         `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	QualityRating      *float64        `json:"quality_rating"`
	AcknowledgmentDate *time.Time      `json:"acknowledgment_date"`
	IssueDate          *time.Time      `json:"issue_date"`
}
