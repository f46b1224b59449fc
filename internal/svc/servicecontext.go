package svc

import (
	"log"
	"time"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/config"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config            config.Config
	CustomSpendersDao model.CustomSpendersDao
	DB                *gorm.DB
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config: c,
	}

	// DSN 为空时不连数据库，自定义 spender 功能关闭
	if c.Postgres.DSN != "" {
		db, err := initDB(c.Postgres.DSN)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		svcCtx.DB = db
		svcCtx.CustomSpendersDao = model.NewCustomSpendersDao(db)
	}

	return svcCtx
}

func initDB(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}
