package rporder

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// OrderRepositoryImpl 采购订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后存储
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po := ToGormModel(order)
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		if isDuplicateKey(err) {
			return errorx.ErrDuplicatePONumber
		}
		return err
	}
	order.ID = po.ID
	order.CreatedAt = po.CreatedAt
	order.UpdatedAt = po.UpdatedAt
	return nil
}

// GetByID 根据ID查询订单
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID int64) (*etorder.Order, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound
		}
		return nil, err
	}
	return ToDomainModel(&po), nil
}

// GetByPONumber 根据采购单号查询，不存在时返回 nil
func (r *OrderRepositoryImpl) GetByPONumber(ctx context.Context, poNumber string) (*etorder.Order, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).Where("po_number = ?", poNumber).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToDomainModel(&po), nil
}

// ListByVendor 查询某供应商的全部订单
func (r *OrderRepositoryImpl) ListByVendor(ctx context.Context, vendorID int64) ([]*etorder.Order, error) {
	var pos []entity.PurchaseOrder
	err := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).Find(&pos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		orders = append(orders, ToDomainModel(&pos[i]))
	}
	return orders, nil
}

// List 分页查询订单列表
func (r *OrderRepositoryImpl) List(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error) {
	var total int64
	var pos []entity.PurchaseOrder

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{})
	if vendorID > 0 {
		query = query.Where("vendor_id = ?", vendorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		orders = append(orders, ToDomainModel(&pos[i]))
	}
	return orders, total, nil
}

// UpdateFields 按列更新订单，只写明确给出的字段
func (r *OrderRepositoryImpl) UpdateFields(ctx context.Context, orderID int64, update etorder.Update) error {
	updates := map[string]interface{}{}
	if update.OrderDate != nil {
		updates["order_date"] = *update.OrderDate
	}
	if update.DeliveryDate != nil {
		updates["delivery_date"] = *update.DeliveryDate
	}
	if update.Items != nil {
		updates["items"] = datatypes.JSON(update.Items)
	}
	if update.Quantity != nil {
		updates["quantity"] = *update.Quantity
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.QualityRating != nil {
		updates["quality_rating"] = *update.QualityRating
	}
	if update.AcknowledgmentDate != nil {
		updates["acknowledgment_date"] = *update.AcknowledgmentDate
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrOrderNotFound
	}
	return nil
}

// Delete 删除订单
func (r *OrderRepositoryImpl) Delete(ctx context.Context, orderID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&entity.PurchaseOrder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrOrderNotFound
	}
	return nil
}

// ToGormModel 领域对象转换为 GORM 模型
func ToGormModel(order *etorder.Order) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		ID:                 order.ID,
		PONumber:           order.PONumber,
		VendorID:           order.VendorID,
		OrderDate:          order.OrderDate,
		DeliveryDate:       order.DeliveryDate,
		Items:              datatypes.JSON(order.Items),
		Quantity:           order.Quantity,
		Status:             string(order.Status),
		QualityRating:      order.QualityRating,
		IssueDate:          order.IssueDate,
		AcknowledgmentDate: order.AcknowledgmentDate,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

// ToDomainModel GORM 模型转换为领域对象
func ToDomainModel(po *entity.PurchaseOrder) *etorder.Order {
	return &etorder.Order{
		ID:                 po.ID,
		PONumber:           po.PONumber,
		VendorID:           po.VendorID,
		OrderDate:          po.OrderDate,
		DeliveryDate:       po.DeliveryDate,
		Items:              []byte(po.Items),
		Quantity:           po.Quantity,
		Status:             etorder.Status(po.Status),
		QualityRating:      po.QualityRating,
		IssueDate:          po.IssueDate,
		AcknowledgmentDate: po.AcknowledgmentDate,
		CreatedAt:          po.CreatedAt,
		UpdatedAt:          po.UpdatedAt,
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
