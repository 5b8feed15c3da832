package rphistory

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leomv55/vms/internal/app/domains/entity/ethistory"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
)

// HistoryRepositoryImpl 历史快照仓储实现（MySQL）
type HistoryRepositoryImpl struct {
	db *gorm.DB
}

// NewHistoryRepository 创建历史快照仓储实例
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &HistoryRepositoryImpl{db: db}
}

// Create 追加一条历史快照
func (r *HistoryRepositoryImpl) Create(ctx context.Context, snapshot *ethistory.Snapshot) error {
	po := &entity.HistoricalPerformance{
		VendorID:            snapshot.VendorID,
		Date:                snapshot.Date,
		OnTimeDeliveryRate:  snapshot.Performance.OnTimeDeliveryRate,
		QualityRatingAvg:    snapshot.Performance.QualityRatingAvg,
		AverageResponseTime: snapshot.Performance.AverageResponseTime,
		FulfillmentRate:     snapshot.Performance.FulfillmentRate,
	}
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return err
	}
	snapshot.ID = po.ID
	return nil
}

// ListByVendor 查询某供应商的历史快照，按时间倒序
func (r *HistoryRepositoryImpl) ListByVendor(ctx context.Context, vendorID int64, page, limit int) ([]*ethistory.Snapshot, int64, error) {
	var total int64
	var pos []entity.HistoricalPerformance

	query := r.db.WithContext(ctx).Model(&entity.HistoricalPerformance{}).Where("vendor_id = ?", vendorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("date DESC, id DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	snapshots := make([]*ethistory.Snapshot, 0, len(pos))
	for i := range pos {
		snapshots = append(snapshots, toDomainModel(&pos[i]))
	}
	return snapshots, total, nil
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *entity.HistoricalPerformance) *ethistory.Snapshot {
	return &ethistory.Snapshot{
		ID:       po.ID,
		VendorID: po.VendorID,
		Date:     po.Date,
		Performance: etvendor.Performance{
			OnTimeDeliveryRate:  po.OnTimeDeliveryRate,
			QualityRatingAvg:    po.QualityRatingAvg,
			AverageResponseTime: po.AverageResponseTime,
			FulfillmentRate:     po.FulfillmentRate,
		},
	}
}
