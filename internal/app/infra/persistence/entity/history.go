package entity

import "time"

// HistoricalPerformance 绩效历史快照实体（GORM 模型）
// 只追加：没有任何代码路径更新或删除快照行（供应商级联删除除外）
type HistoricalPerformance struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement"`
	VendorID int64     `gorm:"column:vendor_id;not null;index:idx_vendor_date"`
	Date     time.Time `gorm:"column:date;not null;index:idx_vendor_date"`

	OnTimeDeliveryRate  float64 `gorm:"column:on_time_delivery_rate;not null"`
	QualityRatingAvg    float64 `gorm:"column:quality_rating_avg;not null"`
	AverageResponseTime float64 `gorm:"column:average_response_time;not null"`
	FulfillmentRate     float64 `gorm:"column:fulfillment_rate;not null"`
}

// TableName 指定表名
func (HistoricalPerformance) TableName() string {
	return "historical_performances"
}
