package etorder

import (
	"encoding/json"
	"time"
)

// Update 订单部分更新字段，nil 表示该字段不修改
// issue_date 创建后不可变，故不在此列
type Update struct {
	OrderDate          *time.Time
	DeliveryDate       *time.Time
	Items              json.RawMessage
	Quantity           *int
	Status             *Status
	QualityRating      *float64
	AcknowledgmentDate *time.Time
}

// Empty 是否没有任何待更新字段
func (u Update) Empty() bool {
	return u.OrderDate == nil &&
		u.DeliveryDate == nil &&
		u.Items == nil &&
		u.Quantity == nil &&
		u.Status == nil &&
		u.QualityRating == nil &&
		u.AcknowledgmentDate == nil
}

// Validate 校验待更新字段取值
func (u Update) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return ErrInvalidStatus
	}
	if u.Quantity != nil && *u.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
