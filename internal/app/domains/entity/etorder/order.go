package etorder

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// 错误定义
var (
	ErrInvalidVendorID = fmt.Errorf("%w: invalid vendor ID", errorx.ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", errorx.ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid order status", errorx.ErrValidation)
)

// Status 采购订单状态
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid 校验状态取值
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order 采购订单聚合根（领域对象）
type Order struct {
	ID                 int64           // 订单ID
	PONumber           string          // 采购单号（唯一）
	VendorID           int64           // 供应商ID
	OrderDate          time.Time       // 下单时间
	DeliveryDate       time.Time       // 约定交付时间
	Items              json.RawMessage // 商品明细（不透明 JSON）
	Quantity           int             // 数量
	Status             Status          // 订单状态
	QualityRating      *float64        // 质量评分（完成后填写，可为空）
	IssueDate          time.Time       // 下发时间（创建时写入，不可变）
	AcknowledgmentDate *time.Time      // 确认时间（供应商确认前为空）
	CreatedAt          time.Time       // 创建时间
	UpdatedAt          time.Time       // 更新时间
}

// NewOrder 创建采购订单（工厂方法），状态固定为 pending，下发时间取当前时间
func NewOrder(poNumber string, vendorID int64, orderDate, deliveryDate time.Time, items json.RawMessage, quantity int) (*Order, error) {
	// 业务规则校验
	if vendorID <= 0 {
		return nil, ErrInvalidVendorID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now()
	return &Order{
		PONumber:     poNumber,
		VendorID:     vendorID,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Items:        items,
		Quantity:     quantity,
		Status:       StatusPending,
		IssueDate:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Acknowledged 是否已确认
func (o *Order) Acknowledged() bool {
	return o.AcknowledgmentDate != nil
}
