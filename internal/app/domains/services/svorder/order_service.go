package svorder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/modules/mdledger"
	"github.com/Leomv55/vms/internal/app/domains/modules/mdmetrics"
	"github.com/Leomv55/vms/internal/app/pkg/logger"
)

// OrderService 订单服务，负责订单业务编排
// 变更链路：台账应用变更 → 绩效引擎同步消费变更描述
type OrderService struct {
	ledger *mdledger.Ledger
	engine *mdmetrics.Engine
	log    logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(ledger *mdledger.Ledger, engine *mdmetrics.Engine, log logger.Logger) *OrderService {
	return &OrderService{
		ledger: ledger,
		engine: engine,
		log:    log,
	}
}

// CreateOrder 创建订单（新建不触发重算）
func (s *OrderService) CreateOrder(ctx context.Context, poNumber string, vendorID int64, orderDate, deliveryDate time.Time, items json.RawMessage, quantity int) (*etorder.Order, error) {
	order, err := etorder.NewOrder(poNumber, vendorID, orderDate, deliveryDate, items, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "order created: po_number=%s vendor_id=%d", order.PONumber, order.VendorID)
	return order, nil
}

// GetOrder 查询订单
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	return s.ledger.GetOrder(ctx, orderID)
}

// ListOrders 查询订单列表
func (s *OrderService) ListOrders(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error) {
	return s.ledger.ListOrders(ctx, vendorID, page, limit)
}

// UpdateOrder 更新订单并同步重算受影响指标
func (s *OrderService) UpdateOrder(ctx context.Context, orderID int64, update etorder.Update) (*etorder.Order, error) {
	change, err := s.ledger.UpdateOrder(ctx, orderID, update)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Apply(ctx, change); err != nil {
		return nil, fmt.Errorf("recompute performance failed: %w", err)
	}
	return change.After, nil
}

// AcknowledgeOrder 确认订单并同步重算平均响应时间
func (s *OrderService) AcknowledgeOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	change, err := s.ledger.AcknowledgeOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Apply(ctx, change); err != nil {
		return nil, fmt.Errorf("recompute performance failed: %w", err)
	}
	return change.After, nil
}

// DeleteOrder 删除订单
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.ledger.DeleteOrder(ctx, orderID)
}
