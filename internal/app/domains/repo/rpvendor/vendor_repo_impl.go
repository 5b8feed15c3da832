package rpvendor

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// VendorRepositoryImpl 供应商仓储实现（MySQL）
type VendorRepositoryImpl struct {
	db *gorm.DB
}

// NewVendorRepository 创建供应商仓储实例
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &VendorRepositoryImpl{db: db}
}

// Create 创建供应商，将领域对象转换为 GORM 模型后存储
func (r *VendorRepositoryImpl) Create(ctx context.Context, vendor *etvendor.Vendor) error {
	po := toGormModel(vendor)
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		if isDuplicateKey(err) {
			return errorx.ErrDuplicateVendorCode
		}
		return err
	}
	// 将数据库生成的ID回写到领域对象
	vendor.ID = po.ID
	vendor.CreatedAt = po.CreatedAt
	vendor.UpdatedAt = po.UpdatedAt
	return nil
}

// GetByID 根据ID查询供应商
func (r *VendorRepositoryImpl) GetByID(ctx context.Context, vendorID int64) (*etvendor.Vendor, error) {
	var po entity.Vendor
	err := r.db.WithContext(ctx).Where("id = ?", vendorID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrVendorNotFound
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// List 分页查询供应商列表
func (r *VendorRepositoryImpl) List(ctx context.Context, page, limit int) ([]*etvendor.Vendor, int64, error) {
	var total int64
	var pos []entity.Vendor

	query := r.db.WithContext(ctx).Model(&entity.Vendor{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("id ASC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	vendors := make([]*etvendor.Vendor, 0, len(pos))
	for i := range pos {
		vendors = append(vendors, toDomainModel(&pos[i]))
	}
	return vendors, total, nil
}

// UpdateIdentity 更新供应商基础信息，只写明确给出的列，指标列不受影响
func (r *VendorRepositoryImpl) UpdateIdentity(ctx context.Context, vendorID int64, update IdentityUpdate) (*etvendor.Vendor, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.ContactDetails != nil {
		updates["contact_details"] = *update.ContactDetails
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.VendorCode != nil {
		updates["vendor_code"] = *update.VendorCode
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		result := r.db.WithContext(ctx).
			Model(&entity.Vendor{}).
			Where("id = ?", vendorID).
			Updates(updates)
		if result.Error != nil {
			if isDuplicateKey(result.Error) {
				return nil, errorx.ErrDuplicateVendorCode
			}
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, errorx.ErrVendorNotFound
		}
	}

	return r.GetByID(ctx, vendorID)
}

// Delete 删除供应商，同一事务内级联删除订单与历史快照
func (r *VendorRepositoryImpl) Delete(ctx context.Context, vendorID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&entity.PurchaseOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&entity.HistoricalPerformance{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", vendorID).Delete(&entity.Vendor{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errorx.ErrVendorNotFound
		}
		return nil
	})
}

// Exists 检查供应商是否存在
func (r *VendorRepositoryImpl) Exists(ctx context.Context, vendorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Vendor{}).Where("id = ?", vendorID).Count(&count).Error
	return count > 0, err
}

// toGormModel 领域对象转换为 GORM 模型
func toGormModel(vendor *etvendor.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:                  vendor.ID,
		Name:                vendor.Name,
		ContactDetails:      vendor.ContactDetails,
		Address:             vendor.Address,
		VendorCode:          vendor.VendorCode,
		OnTimeDeliveryRate:  vendor.Performance.OnTimeDeliveryRate,
		QualityRatingAvg:    vendor.Performance.QualityRatingAvg,
		AverageResponseTime: vendor.Performance.AverageResponseTime,
		FulfillmentRate:     vendor.Performance.FulfillmentRate,
		CreatedAt:           vendor.CreatedAt,
		UpdatedAt:           vendor.UpdatedAt,
	}
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *entity.Vendor) *etvendor.Vendor {
	return &etvendor.Vendor{
		ID:             po.ID,
		Name:           po.Name,
		ContactDetails: po.ContactDetails,
		Address:        po.Address,
		VendorCode:     po.VendorCode,
		Performance: etvendor.Performance{
			OnTimeDeliveryRate:  po.OnTimeDeliveryRate,
			QualityRatingAvg:    po.QualityRatingAvg,
			AverageResponseTime: po.AverageResponseTime,
			FulfillmentRate:     po.FulfillmentRate,
		},
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
}

// isDuplicateKey 识别唯一键冲突（MySQL 1062 / sqlite UNIQUE constraint）
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}
