package entity

import "time"

// Vendor 供应商实体（GORM 模型）
type Vendor struct {
	ID                  int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name                string  `gorm:"column:name;type:varchar(200);not null"`
	ContactDetails      string  `gorm:"column:contact_details;type:text"`
	Address             string  `gorm:"column:address;type:text"`
	VendorCode          string  `gorm:"column:vendor_code;type:varchar(50);uniqueIndex:uk_vendor_code;not null"`
	OnTimeDeliveryRate  float64 `gorm:"column:on_time_delivery_rate;not null;default:0"`
	QualityRatingAvg    float64 `gorm:"column:quality_rating_avg;not null;default:0"`
	AverageResponseTime float64 `gorm:"column:average_response_time;not null;default:0"`
	FulfillmentRate     float64 `gorm:"column:fulfillment_rate;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Vendor) TableName() string {
	return "vendors"
}
