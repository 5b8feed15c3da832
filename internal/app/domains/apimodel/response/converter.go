package response

import (
	"github.com/Leomv55/vms/internal/app/domains/entity/ethistory"
	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

// FromVendorEntity 供应商领域对象转换为响应 DTO
func FromVendorEntity(vendor *etvendor.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:             vendor.ID,
		Name:           vendor.Name,
		ContactDetails: vendor.ContactDetails,
		Address:        vendor.Address,
		VendorCode:     vendor.VendorCode,
		CreatedAt:      vendor.CreatedAt,
		UpdatedAt:      vendor.UpdatedAt,
	}
}

// FromVendorEntities 供应商列表转换
func FromVendorEntities(vendors []*etvendor.Vendor, total int64) *VendorListResponse {
	items := make([]*VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, FromVendorEntity(v))
	}
	return &VendorListResponse{Vendors: items, Total: total}
}

// FromPerformance 绩效指标转换为响应 DTO
func FromPerformance(perf etvendor.Performance) *PerformanceResponse {
	return &PerformanceResponse{
		OnTimeDeliveryRate:  perf.OnTimeDeliveryRate,
		QualityRatingAvg:    perf.QualityRatingAvg,
		AverageResponseTime: perf.AverageResponseTime,
		FulfillmentRate:     perf.FulfillmentRate,
	}
}

// FromOrderEntity 订单领域对象转换为响应 DTO
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	return &OrderResponse{
		ID:                 order.ID,
		PONumber:           order.PONumber,
		VendorID:           order.VendorID,
		OrderDate:          order.OrderDate,
		DeliveryDate:       order.DeliveryDate,
		Items:              order.Items,
		Quantity:           order.Quantity,
		Status:             string(order.Status),
		QualityRating:      order.QualityRating,
		IssueDate:          order.IssueDate,
		AcknowledgmentDate: order.AcknowledgmentDate,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

// FromOrderEntities 订单列表转换
func FromOrderEntities(orders []*etorder.Order, total int64) *OrderListResponse {
	items := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, FromOrderEntity(o))
	}
	return &OrderListResponse{Orders: items, Total: total}
}

// FromHistoryEntity 历史快照领域对象转换为响应 DTO
func FromHistoryEntity(snapshot *ethistory.Snapshot) *HistoryResponse {
	return &HistoryResponse{
		ID:                  snapshot.ID,
		VendorID:            snapshot.VendorID,
		Date:                snapshot.Date,
		OnTimeDeliveryRate:  snapshot.Performance.OnTimeDeliveryRate,
		QualityRatingAvg:    snapshot.Performance.QualityRatingAvg,
		AverageResponseTime: snapshot.Performance.AverageResponseTime,
		FulfillmentRate:     snapshot.Performance.FulfillmentRate,
	}
}

// FromHistoryEntities 历史快照列表转换
func FromHistoryEntities(snapshots []*ethistory.Snapshot, total int64) *HistoryListResponse {
	items := make([]*HistoryResponse, 0, len(snapshots))
	for _, s := range snapshots {
		items = append(items, FromHistoryEntity(s))
	}
	return &HistoryListResponse{History: items, Total: total}
}
