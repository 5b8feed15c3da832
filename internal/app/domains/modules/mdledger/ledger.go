package mdledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/repo/rporder"
	"github.com/Leomv55/vms/internal/app/domains/repo/rpvendor"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// Ledger 订单台账（订单生命周期的唯一写入口）
// 每次变更操作返回前后状态的变更描述，供绩效引擎同步消费；
// 不做任何隐式变更探测，也不经过事件总线
type Ledger struct {
	orderRepo  rporder.OrderRepository
	vendorRepo rpvendor.VendorRepository
}

// NewLedger 创建订单台账实例
func NewLedger(orderRepo rporder.OrderRepository, vendorRepo rpvendor.VendorRepository) *Ledger {
	return &Ledger{
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
	}
}

// CreateOrder 创建订单
// 1. 校验供应商存在（不存在则整体拒绝）
// 2. 采购单号为空时自动生成，重复则拒绝
// 3. 状态固定 pending，下发时间取当前时间（此后不可变）
// 新建订单不触发任何指标重算
func (l *Ledger) CreateOrder(ctx context.Context, order *etorder.Order) error {
	exists, err := l.vendorRepo.Exists(ctx, order.VendorID)
	if err != nil {
		return fmt.Errorf("check vendor exists failed: %w", err)
	}
	if !exists {
		return errorx.ErrVendorNotFound
	}

	if order.PONumber == "" {
		order.PONumber = uuid.New().String()
	}
	existing, err := l.orderRepo.GetByPONumber(ctx, order.PONumber)
	if err != nil {
		return fmt.Errorf("check po number duplicate failed: %w", err)
	}
	if existing != nil {
		return errorx.ErrDuplicatePONumber
	}

	return l.orderRepo.Create(ctx, order)
}

// GetOrder 查询订单
func (l *Ledger) GetOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	return l.orderRepo.GetByID(ctx, orderID)
}

// ListOrders 查询订单列表
func (l *Ledger) ListOrders(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error) {
	return l.orderRepo.List(ctx, vendorID, page, limit)
}

// UpdateOrder 应用部分字段更新，返回前后状态的变更描述
func (l *Ledger) UpdateOrder(ctx context.Context, orderID int64, update etorder.Update) (etorder.Change, error) {
	if err := update.Validate(); err != nil {
		return etorder.Change{}, err
	}

	before, err := l.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return etorder.Change{}, err
	}
	if update.Empty() {
		return etorder.Change{Before: before, After: before}, nil
	}

	if err := l.orderRepo.UpdateFields(ctx, orderID, update); err != nil {
		return etorder.Change{}, err
	}

	after, err := l.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return etorder.Change{}, err
	}
	return etorder.Change{Before: before, After: after}, nil
}

// AcknowledgeOrder 设置订单确认时间为当前时间，仅首次生效
// 已确认的订单原样返回（Before == After，不触发重算）
func (l *Ledger) AcknowledgeOrder(ctx context.Context, orderID int64) (etorder.Change, error) {
	before, err := l.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return etorder.Change{}, err
	}
	if before.Acknowledged() {
		return etorder.Change{Before: before, After: before}, nil
	}

	now := time.Now()
	if err := l.orderRepo.UpdateFields(ctx, orderID, etorder.Update{AcknowledgmentDate: &now}); err != nil {
		return etorder.Change{}, err
	}

	after, err := l.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return etorder.Change{}, err
	}
	return etorder.Change{Before: before, After: after}, nil
}

// DeleteOrder 删除订单（不触发重算，与历史快照语义保持一致）
func (l *Ledger) DeleteOrder(ctx context.Context, orderID int64) error {
	return l.orderRepo.Delete(ctx, orderID)
}
