package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

func newTestRepo(t *testing.T) (OrderRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.Vendor{}, &entity.PurchaseOrder{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewOrderRepository(db), db
}

func mustCreateOrder(t *testing.T, repo OrderRepository, poNumber string, vendorID int64) *etorder.Order {
	t.Helper()
	now := time.Now()
	order, err := etorder.NewOrder(poNumber, vendorID, now, now.Add(7*24*time.Hour), json.RawMessage(`[{"item":"bolt"}]`), 3)
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	if err := repo.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestCreateAndGetOrder(t *testing.T) {
	repo, _ := newTestRepo(t)

	o := mustCreateOrder(t, repo, "PO-R1", 1)
	if o.ID == 0 {
		t.Fatal("order ID not assigned")
	}

	got, err := repo.GetByID(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.PONumber != "PO-R1" || got.Status != etorder.StatusPending {
		t.Errorf("got %s/%s, want PO-R1/pending", got.PONumber, got.Status)
	}
	if string(got.Items) != `[{"item":"bolt"}]` {
		t.Errorf("items = %s", got.Items)
	}
}

func TestCreateOrderDuplicatePONumber(t *testing.T) {
	repo, _ := newTestRepo(t)

	mustCreateOrder(t, repo, "PO-DUP", 1)
	now := time.Now()
	o, err := etorder.NewOrder("PO-DUP", 1, now, now, nil, 1)
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	if err := repo.Create(context.Background(), o); !errors.Is(err, errorx.ErrDuplicatePONumber) {
		t.Errorf("got %v, want ErrDuplicatePONumber", err)
	}
}

func TestGetByPONumberMiss(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetByPONumber(context.Background(), "PO-MISSING")
	if err != nil {
		t.Fatalf("get by po number: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil on miss", got)
	}
}

// 按列更新只触碰给出的字段，issue_date 永远不在可更新列里
func TestUpdateFields(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	o := mustCreateOrder(t, repo, "PO-UF", 1)
	originalIssue := o.IssueDate

	status := etorder.StatusCompleted
	rating := 4.0
	if err := repo.UpdateFields(ctx, o.ID, etorder.Update{Status: &status, QualityRating: &rating}); err != nil {
		t.Fatalf("update fields: %v", err)
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Status != etorder.StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if got.QualityRating == nil || *got.QualityRating != 4.0 {
		t.Errorf("quality_rating = %v, want 4.0", got.QualityRating)
	}
	if !got.IssueDate.Equal(originalIssue) {
		t.Errorf("issue_date changed: %v -> %v", originalIssue, got.IssueDate)
	}
	if got.Quantity != o.Quantity {
		t.Errorf("quantity changed: %d -> %d", o.Quantity, got.Quantity)
	}

	var row entity.PurchaseOrder
	if err := db.First(&row, o.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Status != "completed" {
		t.Errorf("row status = %s, want completed", row.Status)
	}
}

func TestUpdateFieldsNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	status := etorder.StatusCancelled
	if err := repo.UpdateFields(context.Background(), 9999, etorder.Update{Status: &status}); !errors.Is(err, errorx.ErrOrderNotFound) {
		t.Errorf("got %v, want ErrOrderNotFound", err)
	}
}

func TestListByVendor(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	mustCreateOrder(t, repo, "PO-V1A", 1)
	mustCreateOrder(t, repo, "PO-V1B", 1)
	mustCreateOrder(t, repo, "PO-V2A", 2)

	orders, err := repo.ListByVendor(ctx, 1)
	if err != nil {
		t.Fatalf("list by vendor: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("got %d orders, want 2", len(orders))
	}
	for _, o := range orders {
		if o.VendorID != 1 {
			t.Errorf("order %s has vendor_id %d, want 1", o.PONumber, o.VendorID)
		}
	}
}

func TestListUnfiltered(t *testing.T) {
	repo, _ := newTestRepo(t)

	mustCreateOrder(t, repo, "PO-ALL1", 1)
	mustCreateOrder(t, repo, "PO-ALL2", 2)

	// vendorID 为 0 时不按供应商过滤
	orders, total, err := repo.List(context.Background(), 0, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Errorf("got %d/%d, want 2/2", len(orders), total)
	}
}

func TestDeleteOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	o := mustCreateOrder(t, repo, "PO-RD", 1)
	if err := repo.Delete(ctx, o.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, o.ID); !errors.Is(err, errorx.ErrOrderNotFound) {
		t.Errorf("got %v, want ErrOrderNotFound", err)
	}
	if err := repo.Delete(ctx, o.ID); !errors.Is(err, errorx.ErrOrderNotFound) {
		t.Errorf("repeat delete: got %v, want ErrOrderNotFound", err)
	}
}
