package mdmetrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
	"github.com/Leomv55/vms/internal/app/domains/repo/rporder"
	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
	"github.com/Leomv55/vms/internal/app/pkg/logger"
	"github.com/Leomv55/vms/internal/app/pkg/metrics"
)

// CacheInvalidator 绩效缓存失效接口，由缓存实现方满足
type CacheInvalidator interface {
	InvalidatePerformance(ctx context.Context, vendorID int64) error
}

// Engine 绩效引擎：重算触发器 + 历史记录器
// "读旧值 → 计算 → 写新值 → 记历史" 在同一事务内完成，供应商行锁保证
// 同一供应商的并发重算串行执行，不同供应商互不影响
type Engine struct {
	db    *gorm.DB
	log   logger.Logger
	stats *metrics.Metrics
	cache CacheInvalidator // 可为 nil（未配置缓存）
}

// NewEngine 创建绩效引擎实例
func NewEngine(db *gorm.DB, log logger.Logger, stats *metrics.Metrics, cache CacheInvalidator) *Engine {
	return &Engine{
		db:    db,
		log:   log,
		stats: stats,
		cache: cache,
	}
}

// Apply 消费订单变更，对受影响的指标做最小重算并落库
// 变更不影响任何指标时不产生任何读写
func (e *Engine) Apply(ctx context.Context, change etorder.Change) error {
	affected := AffectedMetrics(change)
	if len(affected) == 0 {
		return nil
	}
	_, err := e.recompute(ctx, change.After.VendorID, affected)
	return err
}

// RecalculateAll 全量重算四项指标并落库，返回最新值
// 供按需重算接口（performance?recalculate=true）直接调用
func (e *Engine) RecalculateAll(ctx context.Context, vendorID int64) (etvendor.Performance, error) {
	return e.recompute(ctx, vendorID, etvendor.AllMetrics())
}

// recompute 在一个事务内重算指定指标集合；锁冲突时以新读重试一次
func (e *Engine) recompute(ctx context.Context, vendorID int64, affected []etvendor.Metric) (etvendor.Performance, error) {
	result, err := e.recomputeTx(ctx, vendorID, affected)
	if isLockConflict(err) {
		e.stats.ConflictRetries.Inc()
		e.log.Warnf(ctx, "metrics recompute lock conflict, retrying: vendor_id=%d", vendorID)
		result, err = e.recomputeTx(ctx, vendorID, affected)
		if isLockConflict(err) {
			return etvendor.Performance{}, fmt.Errorf("%w: %v", errorx.ErrConcurrencyConflict, err)
		}
	}
	if err != nil {
		return etvendor.Performance{}, err
	}

	// 事务提交后失效绩效缓存，失败只告警
	if e.cache != nil {
		if cerr := e.cache.InvalidatePerformance(ctx, vendorID); cerr != nil {
			e.log.Warnf(ctx, "invalidate performance cache failed: vendor_id=%d, error=%v", vendorID, cerr)
		}
	}
	return result, nil
}

func (e *Engine) recomputeTx(ctx context.Context, vendorID int64, affected []etvendor.Metric) (etvendor.Performance, error) {
	var result etvendor.Performance

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vendor entity.Vendor
		if err := lockForUpdate(tx).Where("id = ?", vendorID).First(&vendor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errorx.ErrVendorNotFound
			}
			return err
		}

		var pos []entity.PurchaseOrder
		if err := tx.Where("vendor_id = ?", vendorID).Find(&pos).Error; err != nil {
			return err
		}
		orders := make([]*etorder.Order, 0, len(pos))
		for i := range pos {
			orders = append(orders, rporder.ToDomainModel(&pos[i]))
		}

		now := time.Now()
		old := etvendor.Performance{
			OnTimeDeliveryRate:  vendor.OnTimeDeliveryRate,
			QualityRatingAvg:    vendor.QualityRatingAvg,
			AverageResponseTime: vendor.AverageResponseTime,
			FulfillmentRate:     vendor.FulfillmentRate,
		}
		result = old

		// 只更新值确实变化的指标列，避免覆盖供应商记录上的其他并发修改
		updates := map[string]interface{}{}
		for _, m := range affected {
			value := Calculate(m, orders, now)
			e.stats.RecomputeTotal.WithLabelValues(string(m)).Inc()
			result.Set(m, value)
			if value != old.Value(m) {
				updates[string(m)] = value
			}
		}
		if len(updates) == 0 {
			return nil
		}

		// 历史记录器：指标列落库前先以旧值追加快照，快照失败则整体回滚
		snapshot := entity.HistoricalPerformance{
			VendorID:            vendor.ID,
			Date:                now,
			OnTimeDeliveryRate:  old.OnTimeDeliveryRate,
			QualityRatingAvg:    old.QualityRatingAvg,
			AverageResponseTime: old.AverageResponseTime,
			FulfillmentRate:     old.FulfillmentRate,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("record performance history failed: %w", err)
		}
		e.stats.SnapshotsTotal.Inc()

		updates["updated_at"] = now
		return tx.Model(&entity.Vendor{}).Where("id = ?", vendor.ID).Updates(updates).Error
	})
	if err != nil {
		return etvendor.Performance{}, err
	}
	return result, nil
}

// lockForUpdate 供应商行锁；sqlite 等不支持 FOR UPDATE 的方言跳过（其写事务本身串行）
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// isLockConflict 识别行锁冲突（MySQL 1213 死锁 / 1205 锁等待超时）
func isLockConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Deadlock found") || strings.Contains(msg, "Lock wait timeout")
}
