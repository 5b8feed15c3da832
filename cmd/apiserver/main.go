package main

// @title           VMS Backend API
// @version         1.0
// @description     供应商管理系统后端 API，跟踪供应商与采购订单并维护四项滚动绩效指标

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description 令牌认证，格式 "Token <key>"

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Leomv55/vms/internal/app/config"
	"github.com/Leomv55/vms/internal/app/domains/modules/mdledger"
	"github.com/Leomv55/vms/internal/app/domains/modules/mdmetrics"
	"github.com/Leomv55/vms/internal/app/domains/repo/rphistory"
	"github.com/Leomv55/vms/internal/app/domains/repo/rporder"
	"github.com/Leomv55/vms/internal/app/domains/repo/rpvendor"
	"github.com/Leomv55/vms/internal/app/domains/services/svorder"
	"github.com/Leomv55/vms/internal/app/domains/services/svvendor"
	cacheredis "github.com/Leomv55/vms/internal/app/infra/cache/redis"
	"github.com/Leomv55/vms/internal/app/infra/persistence/mysql"
	"github.com/Leomv55/vms/internal/app/pkg/logger"
	"github.com/Leomv55/vms/internal/app/pkg/metrics"
	"github.com/Leomv55/vms/internal/app/server/handlers/order"
	"github.com/Leomv55/vms/internal/app/server/handlers/vendor"
	"github.com/Leomv55/vms/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// 3. 初始化数据库
	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 4. 初始化绩效缓存（未配置 Redis 时禁用）
	var cache *cacheredis.PerformanceCache
	if cfg.Redis.Addr != "" {
		cache, err = cacheredis.NewPerformanceCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer cache.Close()
	}

	// 5. 组装依赖
	stats := metrics.NewDefault()

	vendorRepo := rpvendor.NewVendorRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	historyRepo := rphistory.NewHistoryRepository(db)

	var engine *mdmetrics.Engine
	var perfCache svvendor.PerformanceCache
	if cache != nil {
		engine = mdmetrics.NewEngine(db, zlog, stats, cache)
		perfCache = cache
	} else {
		engine = mdmetrics.NewEngine(db, zlog, stats, nil)
	}

	ledger := mdledger.NewLedger(orderRepo, vendorRepo)
	vendorService := svvendor.NewVendorService(vendorRepo, historyRepo, engine, perfCache, zlog)
	orderService := svorder.NewOrderService(ledger, engine, zlog)

	vendorHandler := vendor.NewVendorHandler(vendorService)
	orderHandler := order.NewOrderHandler(orderService)

	router := routers.SetupRoutes(vendorHandler, orderHandler, zlog, stats, cfg.Auth.Token)

	// 6. 启动 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
