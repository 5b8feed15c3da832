package rphistory

import (
	"context"

	"github.com/Leomv55/vms/internal/app/domains/entity/ethistory"
)

// HistoryRepository 绩效历史快照仓储接口
// 只追加：仅提供 Create 与 List，不提供任何更新或删除操作
type HistoryRepository interface {
	// Create 追加一条历史快照
	Create(ctx context.Context, snapshot *ethistory.Snapshot) error

	// ListByVendor 查询某供应商的历史快照，按时间倒序
	ListByVendor(ctx context.Context, vendorID int64, page, limit int) ([]*ethistory.Snapshot, int64, error)
}
