package etvendor

// Metric 绩效指标标识，值与数据库列名一致
type Metric string

const (
	MetricOnTimeDeliveryRate  Metric = "on_time_delivery_rate"
	MetricQualityRatingAvg    Metric = "quality_rating_avg"
	MetricAverageResponseTime Metric = "average_response_time"
	MetricFulfillmentRate     Metric = "fulfillment_rate"
)

// AllMetrics 全部四项指标
func AllMetrics() []Metric {
	return []Metric{
		MetricOnTimeDeliveryRate,
		MetricQualityRatingAvg,
		MetricAverageResponseTime,
		MetricFulfillmentRate,
	}
}

// Performance 绩效指标（值对象）
type Performance struct {
	OnTimeDeliveryRate  float64 // 准时交付率
	QualityRatingAvg    float64 // 质量评分均值
	AverageResponseTime float64 // 平均响应时间（秒）
	FulfillmentRate     float64 // 履约率
}

// Value 按指标标识取值
func (p Performance) Value(m Metric) float64 {
	switch m {
	case MetricOnTimeDeliveryRate:
		return p.OnTimeDeliveryRate
	case MetricQualityRatingAvg:
		return p.QualityRatingAvg
	case MetricAverageResponseTime:
		return p.AverageResponseTime
	case MetricFulfillmentRate:
		return p.FulfillmentRate
	}
	return 0
}

// Set 按指标标识赋值
func (p *Performance) Set(m Metric, v float64) {
	switch m {
	case MetricOnTimeDeliveryRate:
		p.OnTimeDeliveryRate = v
	case MetricQualityRatingAvg:
		p.QualityRatingAvg = v
	case MetricAverageResponseTime:
		p.AverageResponseTime = v
	case MetricFulfillmentRate:
		p.FulfillmentRate = v
	}
}
