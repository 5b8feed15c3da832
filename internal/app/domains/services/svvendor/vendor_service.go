package svvendor

import (
	"context"

	"github.com/google/uuid"

	"github.com/Leomv55/vms/internal/app/domains/entity/ethistory"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
	"github.com/Leomv55/vms/internal/app/domains/modules/mdmetrics"
	"github.com/Leomv55/vms/internal/app/domains/repo/rphistory"
	"github.com/Leomv55/vms/internal/app/domains/repo/rpvendor"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
	"github.com/Leomv55/vms/internal/app/pkg/logger"
)

// PerformanceCache 绩效读缓存接口，未命中时返回 (nil, nil)
type PerformanceCache interface {
	GetPerformance(ctx context.Context, vendorID int64) (*etvendor.Performance, error)
	SetPerformance(ctx context.Context, vendorID int64, perf etvendor.Performance) error
	InvalidatePerformance(ctx context.Context, vendorID int64) error
}

// VendorService 供应商服务，负责供应商业务编排
type VendorService struct {
	vendorRepo  rpvendor.VendorRepository
	historyRepo rphistory.HistoryRepository
	engine      *mdmetrics.Engine
	cache       PerformanceCache // 可为 nil（未配置 Redis）
	log         logger.Logger
}

// NewVendorService 创建供应商服务实例
func NewVendorService(
	vendorRepo rpvendor.VendorRepository,
	historyRepo rphistory.HistoryRepository,
	engine *mdmetrics.Engine,
	cache PerformanceCache,
	log logger.Logger,
) *VendorService {
	return &VendorService{
		vendorRepo:  vendorRepo,
		historyRepo: historyRepo,
		engine:      engine,
		cache:       cache,
		log:         log,
	}
}

// CreateVendor 创建供应商，编码为空时自动生成；四项指标初始为 0，不产生历史快照
func (s *VendorService) CreateVendor(ctx context.Context, name, contactDetails, address, vendorCode string) (*etvendor.Vendor, error) {
	if vendorCode == "" {
		vendorCode = uuid.New().String()
	}

	vendor, err := etvendor.NewVendor(name, contactDetails, address, vendorCode)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "vendor created: vendor_code=%s", vendor.VendorCode)
	return vendor, nil
}

// GetVendor 查询供应商
func (s *VendorService) GetVendor(ctx context.Context, vendorID int64) (*etvendor.Vendor, error) {
	return s.vendorRepo.GetByID(ctx, vendorID)
}

// ListVendors 查询供应商列表
func (s *VendorService) ListVendors(ctx context.Context, page, limit int) ([]*etvendor.Vendor, int64, error) {
	return s.vendorRepo.List(ctx, page, limit)
}

// UpdateVendor 更新供应商基础信息，指标列不经此路径写入
func (s *VendorService) UpdateVendor(ctx context.Context, vendorID int64, update rpvendor.IdentityUpdate) (*etvendor.Vendor, error) {
	return s.vendorRepo.UpdateIdentity(ctx, vendorID, update)
}

// DeleteVendor 删除供应商及其全部订单与历史快照
func (s *VendorService) DeleteVendor(ctx context.Context, vendorID int64) error {
	if err := s.vendorRepo.Delete(ctx, vendorID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidatePerformance(ctx, vendorID); err != nil {
			s.log.Warnf(ctx, "invalidate performance cache failed: vendor_id=%d, error=%v", vendorID, err)
		}
	}
	return nil
}

// GetPerformance 查询供应商绩效指标
// recalculate 为 true 时绕过最小重算逻辑，强制全量重算后返回；
// 否则走缓存旁路读取已存储的指标值
func (s *VendorService) GetPerformance(ctx context.Context, vendorID int64, recalculate bool) (etvendor.Performance, error) {
	if recalculate {
		return s.engine.RecalculateAll(ctx, vendorID)
	}

	if s.cache != nil {
		if perf, err := s.cache.GetPerformance(ctx, vendorID); err == nil && perf != nil {
			return *perf, nil
		}
	}

	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return etvendor.Performance{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetPerformance(ctx, vendorID, vendor.Performance); err != nil {
			s.log.Warnf(ctx, "set performance cache failed: vendor_id=%d, error=%v", vendorID, err)
		}
	}
	return vendor.Performance, nil
}

// GetHistory 查询供应商绩效历史快照，按时间倒序
func (s *VendorService) GetHistory(ctx context.Context, vendorID int64, page, limit int) ([]*ethistory.Snapshot, int64, error) {
	exists, err := s.vendorRepo.Exists(ctx, vendorID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, errorx.ErrVendorNotFound
	}
	return s.historyRepo.ListByVendor(ctx, vendorID, page, limit)
}
