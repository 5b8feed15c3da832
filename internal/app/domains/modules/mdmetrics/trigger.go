package mdmetrics

import (
	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

// AffectedMetrics 根据订单变更决定需要重算的指标集合（最小重算，避免每次保存都全量扫描）
// 规则：
//   - 状态转为 completed → 准时交付率
//   - 质量评分变化 → 质量评分均值
//   - 确认时间变化 → 平均响应时间
//   - 状态发生任何变化 → 履约率
//   - 新建订单本身不触发重算；数量等字段变化同样不触发
func AffectedMetrics(change etorder.Change) []etvendor.Metric {
	if change.Created() || change.After == nil {
		return nil
	}

	var affected []etvendor.Metric
	if change.CompletedNow() {
		affected = append(affected, etvendor.MetricOnTimeDeliveryRate)
	}
	if change.QualityRatingChanged() {
		affected = append(affected, etvendor.MetricQualityRatingAvg)
	}
	if change.AcknowledgmentChanged() {
		affected = append(affected, etvendor.MetricAverageResponseTime)
	}
	if change.StatusChanged() {
		affected = append(affected, etvendor.MetricFulfillmentRate)
	}
	return affected
}
