package mdmetrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

func orderWith(mutate func(*etorder.Order)) *etorder.Order {
	o := makeOrder(etorder.StatusPending, nil)
	if mutate != nil {
		mutate(o)
	}
	return o
}

func TestAffectedMetrics(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		change etorder.Change
		want   []etvendor.Metric
	}{
		{
			name:   "creation triggers nothing",
			change: etorder.Change{Before: nil, After: orderWith(nil)},
			want:   nil,
		},
		{
			name: "quantity-only change triggers nothing",
			change: etorder.Change{
				Before: orderWith(func(o *etorder.Order) { o.Quantity = 1 }),
				After:  orderWith(func(o *etorder.Order) { o.Quantity = 99 }),
			},
			want: nil,
		},
		{
			name: "transition to completed",
			change: etorder.Change{
				Before: orderWith(nil),
				After:  orderWith(func(o *etorder.Order) { o.Status = etorder.StatusCompleted }),
			},
			want: []etvendor.Metric{etvendor.MetricOnTimeDeliveryRate, etvendor.MetricFulfillmentRate},
		},
		{
			name: "transition to cancelled only affects fulfillment",
			change: etorder.Change{
				Before: orderWith(nil),
				After:  orderWith(func(o *etorder.Order) { o.Status = etorder.StatusCancelled }),
			},
			want: []etvendor.Metric{etvendor.MetricFulfillmentRate},
		},
		{
			name: "quality rating set",
			change: etorder.Change{
				Before: orderWith(nil),
				After:  orderWith(func(o *etorder.Order) { o.QualityRating = floatPtr(4) }),
			},
			want: []etvendor.Metric{etvendor.MetricQualityRatingAvg},
		},
		{
			name: "quality rating unchanged value",
			change: etorder.Change{
				Before: orderWith(func(o *etorder.Order) { o.QualityRating = floatPtr(4) }),
				After:  orderWith(func(o *etorder.Order) { o.QualityRating = floatPtr(4) }),
			},
			want: nil,
		},
		{
			name: "acknowledgment set",
			change: etorder.Change{
				Before: orderWith(nil),
				After:  orderWith(func(o *etorder.Order) { o.AcknowledgmentDate = &now }),
			},
			want: []etvendor.Metric{etvendor.MetricAverageResponseTime},
		},
		{
			name: "completed with rating and acknowledgment at once",
			change: etorder.Change{
				Before: orderWith(nil),
				After: orderWith(func(o *etorder.Order) {
					o.Status = etorder.StatusCompleted
					o.QualityRating = floatPtr(5)
					o.AcknowledgmentDate = &now
				}),
			},
			want: []etvendor.Metric{
				etvendor.MetricOnTimeDeliveryRate,
				etvendor.MetricQualityRatingAvg,
				etvendor.MetricAverageResponseTime,
				etvendor.MetricFulfillmentRate,
			},
		},
		{
			name: "no-op change triggers nothing",
			change: etorder.Change{
				Before: orderWith(nil),
				After:  orderWith(nil),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AffectedMetrics(tt.change)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AffectedMetrics() = %v, want %v", got, tt.want)
			}
		})
	}
}
