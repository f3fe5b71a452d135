package app

import (
	"fmt"
	"time"

	"github.com/rawhoneyguide/honeyexplorer/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func getDatabase(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)

	loglevel := logger.Silent
	if cfg.Debug {
		loglevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		Logger:         logger.Default.LogMode(loglevel),
	})
	if err != nil {
		zap.S().Panicf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Panicf("failed to access database pool: %v", err)
	}
	if cfg.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
	}
	if cfg.IdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.IdleConn)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}
