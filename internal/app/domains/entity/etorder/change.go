package etorder

import "time"

// Change 订单变更描述（值对象）
// Before 为 nil 表示新建订单；Before/After 均为变更事务内读取的快照，
// 由台账层显式传递，下游不做任何隐式脏字段探测
type Change struct {
	Before *Order
	After  *Order
}

// Created 是否为新建订单
func (c Change) Created() bool {
	return c.Before == nil
}

// StatusChanged 状态是否发生变化（新建不算）
func (c Change) StatusChanged() bool {
	if c.Created() {
		return false
	}
	return c.Before.Status != c.After.Status
}

// CompletedNow 状态是否在本次变更中转为 completed
func (c Change) CompletedNow() bool {
	return c.StatusChanged() && c.After.Status == StatusCompleted
}

// QualityRatingChanged 质量评分是否发生变化
func (c Change) QualityRatingChanged() bool {
	if c.Created() {
		return false
	}
	return !floatPtrEqual(c.Before.QualityRating, c.After.QualityRating)
}

// AcknowledgmentChanged 确认时间是否发生变化
func (c Change) AcknowledgmentChanged() bool {
	if c.Created() {
		return false
	}
	return !timePtrEqual(c.Before.AcknowledgmentDate, c.After.AcknowledgmentDate)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
