package response

import "time"

// VendorResponse 供应商响应（DTO）
type VendorResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ContactDetails string    `json:"contact_details"`
	Address        string    `json:"address"`
	VendorCode     string    `json:"vendor_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PerformanceResponse 绩效指标响应（DTO）
type PerformanceResponse struct {
	OnTimeDeliveryRate  float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `json:"quality_rating_avg"`
	AverageResponseTime float64 `json:"average_response_time"`
	FulfillmentRate     float64 `json:"fulfillment_rate"`
}

// HistoryResponse 绩效历史快照响应（DTO）
type HistoryResponse struct {
	ID                  int64     `json:"id"`
	VendorID            int64     `json:"vendor_id"`
	Date                time.Time `json:"date"`
	OnTimeDeliveryRate  float64   `json:"on_time_delivery_rate"`
	QualityRatingAvg    float64   `json:"quality_rating_avg"`
	AverageResponseTime float64   `json:"average_response_time"`
	FulfillmentRate     float64   `json:"fulfillment_rate"`
}

// VendorListResponse 供应商分页列表响应
type VendorListResponse struct {
	Vendors []*VendorResponse `json:"vendors"`
	Total   int64             `json:"total"`
}

// HistoryListResponse 历史快照分页列表响应
type HistoryListResponse struct {
	History []*HistoryResponse `json:"history"`
	Total   int64              `json:"total"`
}
