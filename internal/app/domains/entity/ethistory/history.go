package ethistory

import (
	"time"

	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

// Snapshot 绩效历史快照（领域对象）
// 仅由历史记录器在指标列落库前创建，携带更新前的旧值；只追加，不修改不删除
type Snapshot struct {
	ID          int64                // 快照ID
	VendorID    int64                // 供应商ID
	Date        time.Time            // 快照时间
	Performance etvendor.Performance // 快照时点的四项指标
}
