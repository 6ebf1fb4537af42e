package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moviezone/internal/biz"
	"moviezone/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewKVStore,
	NewCatalogClient,
)

// Storage drivers accepted in data.store.driver.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

const defaultSQLitePath = "moviezone.db"

// Data encapsulates the key-value backend and the optional Redis cache
type Data struct {
	driver string
	prefix string

	mem  *memoryKV
	lite *sql.DB
	db   *gorm.DB
	rdb  *redis.Client

	log *log.Helper
}

// NewData opens the configured storage backend and, when configured, Redis.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)

	store := &conf.Data_Store{}
	if c != nil && c.Store != nil {
		store = c.Store
	}
	driver := store.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	d := &Data{
		driver: driver,
		prefix: store.KeyPrefix,
		log:    l,
	}

	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			Password:     c.Redis.Password,
			DB:           int(c.Redis.Db),
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()

		switch {
		case err == nil:
			l.Info("redis connected successfully")
			d.rdb = rdb
		case driver == DriverRedis:
			rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		default:
			// Redis only backs the details cache here; run without it.
			l.Warnf("failed to connect to redis: %v", err)
			rdb.Close()
		}
	}

	switch driver {
	case DriverMemory:
		d.mem = newMemoryKV()
	case DriverSQLite:
		path := store.Source
		if path == "" {
			path = defaultSQLitePath
		}
		lite, err := openSQLite(path)
		if err != nil {
			d.close()
			return nil, nil, err
		}
		d.lite = lite
		l.Infof("sqlite store opened at %s", path)
	case DriverPostgres:
		db, err := openPostgres(store.Source)
		if err != nil {
			l.Errorf("failed to connect to database: %v", err)
			d.close()
			return nil, nil, err
		}
		d.db = db
		l.Info("database connected successfully")
	case DriverRedis:
		if d.rdb == nil {
			return nil, nil, fmt.Errorf("driver %q needs data.redis.addr", driver)
		}
	default:
		d.close()
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	cleanup := func() {
		l.Info("closing data resources")
		d.close()
	}

	return d, cleanup, nil
}

// NewKVStore returns the key-value backend selected by the configured driver.
func NewKVStore(d *Data) biz.KVStore {
	switch d.driver {
	case DriverMemory:
		return d.mem
	case DriverRedis:
		return newRedisKV(d.rdb, d.prefix)
	case DriverPostgres:
		return newPostgresKV(d.db, d.prefix)
	default:
		return newSQLiteKV(d.lite)
	}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate entries: %w", err)
	}

	return db, nil
}

func (d *Data) close() {
	if d.rdb != nil {
		if err := d.rdb.Close(); err != nil {
			d.log.Errorf("failed to close redis: %v", err)
		}
	}
	if d.lite != nil {
		if err := d.lite.Close(); err != nil {
			d.log.Errorf("failed to close sqlite: %v", err)
		}
	}
	if d.db != nil {
		if sqlDB, err := d.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				d.log.Errorf("failed to close database: %v", err)
			}
		}
	}
}
