package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/Leomv55/vms/internal/app/domains/modules/mdledger"
	"github.com/Leomv55/vms/internal/app/domains/modules/mdmetrics"
	"github.com/Leomv55/vms/internal/app/domains/repo/rphistory"
	"github.com/Leomv55/vms/internal/app/domains/repo/rporder"
	"github.com/Leomv55/vms/internal/app/domains/repo/rpvendor"
	"github.com/Leomv55/vms/internal/app/domains/services/svorder"
	"github.com/Leomv55/vms/internal/app/domains/services/svvendor"
	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
	"github.com/Leomv55/vms/internal/app/pkg/logger"
	"github.com/Leomv55/vms/internal/app/pkg/metrics"
	"github.com/Leomv55/vms/internal/app/server/handlers/order"
	"github.com/Leomv55/vms/internal/app/server/handlers/vendor"
)

// newTestRouter 用内存库组装完整服务栈
func newTestRouter(t *testing.T, authToken string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.Vendor{}, &entity.PurchaseOrder{}, &entity.HistoricalPerformance{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := logger.NewNop()
	stats := metrics.New(prometheus.NewRegistry())

	vendorRepo := rpvendor.NewVendorRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	historyRepo := rphistory.NewHistoryRepository(db)

	engine := mdmetrics.NewEngine(db, log, stats, nil)
	ledger := mdledger.NewLedger(orderRepo, vendorRepo)

	vendorService := svvendor.NewVendorService(vendorRepo, historyRepo, engine, nil, log)
	orderService := svorder.NewOrderService(ledger, engine, log)

	return SetupRoutes(vendor.NewVendorHandler(vendorService), order.NewOrderHandler(orderService), log, stats, authToken)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v (body %s)", err, w.Body.String())
	}
}

// 完整链路：建供应商 → 建两单 → 完成其一 → 绩效端点返回重算后的指标
func TestVendorPerformanceFlow(t *testing.T) {
	r := newTestRouter(t, "")
	now := time.Now()
	past := now.Add(-2 * 24 * time.Hour)

	w := doJSON(t, r, http.MethodPost, "/api/v1/vendors", map[string]interface{}{
		"name": "Flow Vendor", "contact_details": "c", "address": "a", "vendor_code": "FLOW-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create vendor: status %d, body %s", w.Code, w.Body.String())
	}
	var v struct {
		ID int64 `json:"id"`
	}
	decodeData(t, w, &v)

	var orderIDs []int64
	for _, po := range []string{"PO-F1", "PO-F2"} {
		w = doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
			"po_number": po, "vendor_id": v.ID,
			"order_date": past, "delivery_date": past, "quantity": 1,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create order %s: status %d, body %s", po, w.Code, w.Body.String())
		}
		var o struct {
			ID int64 `json:"id"`
		}
		decodeData(t, w, &o)
		orderIDs = append(orderIDs, o.ID)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d", orderIDs[0]), map[string]interface{}{
		"status": "completed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("complete order: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/vendors/%d/performance", v.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get performance: status %d, body %s", w.Code, w.Body.String())
	}
	var perf struct {
		OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"`
		FulfillmentRate    float64 `json:"fulfillment_rate"`
	}
	decodeData(t, w, &perf)
	if perf.OnTimeDeliveryRate != 1.0 {
		t.Errorf("on_time_delivery_rate = %v, want 1.0", perf.OnTimeDeliveryRate)
	}
	if perf.FulfillmentRate != 0.5 {
		t.Errorf("fulfillment_rate = %v, want 0.5", perf.FulfillmentRate)
	}

	// 指标变化会落一条历史快照
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/vendors/%d/history", v.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get history: status %d, body %s", w.Code, w.Body.String())
	}
	var history struct {
		Total int64 `json:"total"`
	}
	decodeData(t, w, &history)
	if history.Total != 1 {
		t.Errorf("history total = %d, want 1", history.Total)
	}
}

func TestAcknowledgeOrderFlow(t *testing.T) {
	r := newTestRouter(t, "")
	now := time.Now()

	w := doJSON(t, r, http.MethodPost, "/api/v1/vendors", map[string]interface{}{
		"name": "Ack Vendor", "vendor_code": "ACK-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create vendor: status %d, body %s", w.Code, w.Body.String())
	}
	var v struct {
		ID int64 `json:"id"`
	}
	decodeData(t, w, &v)

	w = doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"po_number": "PO-ACK", "vendor_id": v.ID,
		"order_date": now, "delivery_date": now.Add(7 * 24 * time.Hour), "quantity": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: status %d, body %s", w.Code, w.Body.String())
	}
	var o struct {
		ID int64 `json:"id"`
	}
	decodeData(t, w, &o)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/acknowledge", o.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("acknowledge: status %d, body %s", w.Code, w.Body.String())
	}
	var acked struct {
		AcknowledgmentDate *time.Time `json:"acknowledgment_date"`
	}
	decodeData(t, w, &acked)
	if acked.AcknowledgmentDate == nil {
		t.Error("acknowledgment_date not set")
	}
}

func TestNotFoundAndValidation(t *testing.T) {
	r := newTestRouter(t, "")

	w := doJSON(t, r, http.MethodGet, "/api/v1/vendors/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing vendor: status %d, want 404", w.Code)
	}

	// 缺少必填字段
	w = doJSON(t, r, http.MethodPost, "/api/v1/vendors", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid vendor: status %d, want 400", w.Code)
	}

	// 订单引用不存在的供应商
	w = doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"vendor_id": 9999, "order_date": time.Now(), "delivery_date": time.Now(), "quantity": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("order without vendor: status %d, want 404, body %s", w.Code, w.Body.String())
	}
}

// 唯一编码重复属于校验错误，不产生部分写入
func TestDuplicateVendorCodeRejected(t *testing.T) {
	r := newTestRouter(t, "")

	body := map[string]interface{}{"name": "Dup", "vendor_code": "DUP-01"}
	if w := doJSON(t, r, http.MethodPost, "/api/v1/vendors", body); w.Code != http.StatusCreated {
		t.Fatalf("create first: status %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/v1/vendors", body); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate code: status %d, want 400, body %s", w.Code, w.Body.String())
	}
}

// 业务接口需要令牌，/health 与 /metrics 不需要
func TestAuthBoundary(t *testing.T) {
	r := newTestRouter(t, "secret")

	w := doJSON(t, r, http.MethodGet, "/api/v1/vendors", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated list: status %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	req.Header.Set("Authorization", "Token secret")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Errorf("authenticated list: status %d, want 200", w2.Code)
	}

	for _, path := range []string{"/health", "/metrics"} {
		if w := doJSON(t, r, http.MethodGet, path, nil); w.Code != http.StatusOK {
			t.Errorf("%s: status %d, want 200", path, w.Code)
		}
	}
}
