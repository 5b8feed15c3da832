// Package metrics 提供绩效引擎的 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 绩效引擎运行指标
type Metrics struct {
	// RecomputeTotal 指标重算次数，label: metric
	RecomputeTotal *prometheus.CounterVec
	// SnapshotsTotal 历史快照写入次数
	SnapshotsTotal prometheus.Counter
	// ConflictRetries 并发冲突重试次数
	ConflictRetries prometheus.Counter
	// HTTPRequests HTTP 请求次数，label: method/path/status
	HTTPRequests *prometheus.CounterVec
}

// New 创建并注册引擎指标
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecomputeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vms",
			Subsystem: "performance",
			Name:      "recompute_total",
			Help:      "Number of metric recomputations, by metric.",
		}, []string{"metric"}),
		SnapshotsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vms",
			Subsystem: "performance",
			Name:      "snapshots_total",
			Help:      "Number of historical performance snapshots recorded.",
		}),
		ConflictRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "vms",
			Subsystem: "performance",
			Name:      "conflict_retries_total",
			Help:      "Number of recompute transactions retried after a lock conflict.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vms",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP requests, by method, path and status.",
		}, []string{"method", "path", "status"}),
	}
}

// NewDefault 注册到默认 Registry
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
