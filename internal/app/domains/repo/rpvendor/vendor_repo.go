package rpvendor

import (
	"context"

	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

// IdentityUpdate 供应商基础信息更新字段，nil 表示不修改
// 指标列不经此路径更新，只能由绩效引擎写入
type IdentityUpdate struct {
	Name           *string
	ContactDetails *string
	Address        *string
	VendorCode     *string
}

// VendorRepository 供应商仓储接口（只定义，不实现）
type VendorRepository interface {
	// Create 创建供应商
	Create(ctx context.Context, vendor *etvendor.Vendor) error

	// GetByID 根据ID查询供应商
	GetByID(ctx context.Context, vendorID int64) (*etvendor.Vendor, error)

	// List 分页查询供应商列表
	List(ctx context.Context, page, limit int) ([]*etvendor.Vendor, int64, error)

	// UpdateIdentity 更新供应商基础信息（名称/联系方式/地址/编码）
	UpdateIdentity(ctx context.Context, vendorID int64, update IdentityUpdate) (*etvendor.Vendor, error)

	// Delete 删除供应商，并在同一事务内级联删除其订单与历史快照
	Delete(ctx context.Context, vendorID int64) error

	// Exists 检查供应商是否存在
	Exists(ctx context.Context, vendorID int64) (bool, error)
}
