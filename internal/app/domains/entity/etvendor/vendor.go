package etvendor

import (
	"fmt"
	"time"

	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// 错误定义
var (
	ErrInvalidName       = fmt.Errorf("%w: vendor name cannot be empty", errorx.ErrValidation)
	ErrInvalidVendorCode = fmt.Errorf("%w: vendor code cannot be empty", errorx.ErrValidation)
)

// Vendor 供应商聚合根（领域对象）
type Vendor struct {
	ID             int64       // 供应商ID
	Name           string      // 供应商名称
	ContactDetails string      // 联系方式
	Address        string      // 地址
	VendorCode     string      // 供应商编码（唯一）
	Performance    Performance // 当前绩效指标
	CreatedAt      time.Time   // 创建时间
	UpdatedAt      time.Time   // 更新时间
}

// NewVendor 创建供应商（工厂方法）
func NewVendor(name, contactDetails, address, vendorCode string) (*Vendor, error) {
	// 业务规则校验
	if name == "" {
		return nil, ErrInvalidName
	}
	if vendorCode == "" {
		return nil, ErrInvalidVendorCode
	}

	return &Vendor{
		Name:           name,
		ContactDetails: contactDetails,
		Address:        address,
		VendorCode:     vendorCode,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}
