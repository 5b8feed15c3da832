package entity

import (
	"time"

	"gorm.io/datatypes"
)

// PurchaseOrder 采购订单实体（GORM 模型）
type PurchaseOrder struct {
	// 基础字段
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	PONumber string `gorm:"column:po_number;type:varchar(50);uniqueIndex:uk_po_number;not null"`
	VendorID int64  `gorm:"column:vendor_id;not null;index:idx_vendor_status"`

	// 订单数据
	OrderDate    time.Time      `gorm:"column:order_date;not null"`
	DeliveryDate time.Time      `gorm:"column:delivery_date;not null"`
	Items        datatypes.JSON `gorm:"column:items;type:json"`
	Quantity     int            `gorm:"column:quantity;not null"`

	// 生命周期状态
	Status             string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index:idx_vendor_status"`
	QualityRating      *float64   `gorm:"column:quality_rating"`
	IssueDate          time.Time  `gorm:"column:issue_date;not null"`
	AcknowledgmentDate *time.Time `gorm:"column:acknowledgment_date"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}
