package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Leomv55/vms/internal/app/infra/persistence/entity"
)

// Open 建立 MySQL 连接并返回 GORM 实例
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate 迁移全部数据表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Vendor{},
		&entity.PurchaseOrder{},
		&entity.HistoricalPerformance{},
	)
}
