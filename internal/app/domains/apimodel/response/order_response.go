package response

import (
	"encoding/json"
	"time"
)

// OrderResponse 采购订单响应（DTO）
type OrderResponse struct {
	ID                 int64           `json:"id"`
	PONumber           string          `json:"po_number"`
	VendorID           int64           `json:"vendor_id"`
	OrderDate          time.Time       `json:"order_date"`
	DeliveryDate       time.Time       `json:"delivery_date"`
	Items              json.RawMessage `json:"items,omitempty"`
	Quantity           int             `json:"quantity"`
	Status             string          `json:"status"`
	QualityRating      *float64        `json:"quality_rating"`
	IssueDate          time.Time       `json:"issue_date"`
	AcknowledgmentDate *time.Time      `json:"acknowledgment_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// OrderListResponse 订单分页列表响应
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
}
