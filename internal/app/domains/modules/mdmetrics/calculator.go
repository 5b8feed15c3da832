package mdmetrics

import (
	"time"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

// 纯计算函数：给定订单集合快照即可得出指标，无副作用，可重复调用。
// "无数据" 一律返回 0.0，不是错误。

// OnTimeDeliveryRate 准时交付率：已完成订单中 delivery_date <= now 的占比
// now 取计算时刻而非订单完成时刻，已完成订单的准时判定会随壁钟时间推移而变化
func OnTimeDeliveryRate(orders []*etorder.Order, now time.Time) float64 {
	completed, onTime := 0, 0
	for _, o := range orders {
		if o.Status != etorder.StatusCompleted {
			continue
		}
		completed++
		if !o.DeliveryDate.After(now) {
			onTime++
		}
	}
	if completed == 0 {
		return 0.0
	}
	return float64(onTime) / float64(completed)
}

// QualityRatingAvg 质量评分均值：已完成且已评分订单的评分平均值
func QualityRatingAvg(orders []*etorder.Order) float64 {
	count := 0
	sum := 0.0
	for _, o := range orders {
		if o.Status != etorder.StatusCompleted || o.QualityRating == nil {
			continue
		}
		count++
		sum += *o.QualityRating
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// AverageResponseTime 平均响应时间（秒）：已完成且已确认订单的
// (acknowledgment_date - issue_date) 平均值，未确认订单不参与
func AverageResponseTime(orders []*etorder.Order) float64 {
	count := 0
	sum := 0.0
	for _, o := range orders {
		if o.Status != etorder.StatusCompleted || o.AcknowledgmentDate == nil {
			continue
		}
		count++
		sum += o.AcknowledgmentDate.Sub(o.IssueDate).Seconds()
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// FulfillmentRate 履约率：已完成订单数 / 全部订单数
func FulfillmentRate(orders []*etorder.Order) float64 {
	if len(orders) == 0 {
		return 0.0
	}
	completed := 0
	for _, o := range orders {
		if o.Status == etorder.StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(orders))
}

// Calculate 按指标标识计算单项指标
func Calculate(m etvendor.Metric, orders []*etorder.Order, now time.Time) float64 {
	switch m {
	case etvendor.MetricOnTimeDeliveryRate:
		return OnTimeDeliveryRate(orders, now)
	case etvendor.MetricQualityRatingAvg:
		return QualityRatingAvg(orders)
	case etvendor.MetricAverageResponseTime:
		return AverageResponseTime(orders)
	case etvendor.MetricFulfillmentRate:
		return FulfillmentRate(orders)
	}
	return 0.0
}

// CalculateAll 对同一订单集合快照计算全部四项指标
func CalculateAll(orders []*etorder.Order, now time.Time) etvendor.Performance {
	return etvendor.Performance{
		OnTimeDeliveryRate:  OnTimeDeliveryRate(orders, now),
		QualityRatingAvg:    QualityRatingAvg(orders),
		AverageResponseTime: AverageResponseTime(orders),
		FulfillmentRate:     FulfillmentRate(orders),
	}
}
