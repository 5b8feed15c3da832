package rporder

import (
	"context"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
)

// OrderRepository 采购订单仓储接口（只定义，不实现）
type OrderRepository interface {
	// Create 创建订单
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单
	GetByID(ctx context.Context, orderID int64) (*etorder.Order, error)

	// GetByPONumber 根据采购单号查询（用于检查重复）
	GetByPONumber(ctx context.Context, poNumber string) (*etorder.Order, error)

	// ListByVendor 查询某供应商的全部订单（指标计算输入）
	ListByVendor(ctx context.Context, vendorID int64) ([]*etorder.Order, error)

	// List 分页查询订单列表，vendorID 为 0 时不过滤
	List(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error)

	// UpdateFields 按列更新订单，issue_date 不在可更新列之内
	UpdateFields(ctx context.Context, orderID int64, update etorder.Update) error

	// Delete 删除订单
	Delete(ctx context.Context, orderID int64) error
}
