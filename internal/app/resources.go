package app

import (
	"context"
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/config"
	"go-payroll/internal/holiday"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/profile"
	"go-payroll/internal/salarycycle"
	"go-payroll/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resources holds the shared connections of one process.
type resources struct {
	gormDB *gorm.DB
	db     *sql.DB
	rdb    *redis.Client
}

func (r *resources) Close() {
	if r.rdb != nil {
		_ = r.rdb.Close()
	}
	if r.db != nil {
		_ = r.db.Close()
	}
}

// connect opens Postgres and, when REDIS_ADDR is set, Redis.
func connect(cfg config.Config, withRedis bool) (*resources, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	res := &resources{gormDB: gormDB, db: sqlDB}

	if withRedis && cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			res.Close()
			return nil, err
		}
		res.rdb = rdb
	} else if withRedis {
		zap.L().Warn("REDIS_ADDR not set, running without cache and idempotency")
	}

	if cfg.AutoMigrate {
		if err := Migrate(context.Background(), gormDB, sqlDB); err != nil {
			res.Close()
			return nil, err
		}
	}

	return res, nil
}

// Migrate creates the tables this service reads and writes.
func Migrate(ctx context.Context, gormDB *gorm.DB, db *sql.DB) error {
	err := gormDB.WithContext(ctx).AutoMigrate(
		&profile.Profile{},
		&holiday.Holiday{},
		&attendance.Attendance{},
		&salarycycle.SalaryCycle{},
		&salarycycle.SalaryEarning{},
		&salarycycle.SalaryPayment{},
	)
	if err != nil {
		return err
	}
	if err := kafka.EnsureSchema(ctx, db); err != nil {
		return err
	}
	zap.L().Named("app.migrate").Info("schema migrated")
	return nil
}

func newSalaryCycleService(res *resources, logger *zap.Logger) salarycycle.Service {
	return salarycycle.NewService(
		res.db,
		salarycycle.NewRepository(res.gormDB),
		salarycycle.Sources{
			Profiles:   profile.NewRepository(res.gormDB),
			Holidays:   holiday.NewRepository(res.gormDB),
			Attendance: attendance.NewRepository(res.gormDB),
		},
		kafka.NewOutboxRepository(res.db),
		res.rdb,
		logger,
	)
}
