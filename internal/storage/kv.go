// Package storage is the durable key-value store behind session and
// order-history persistence. It is a single gorm-managed table so the
// same code runs against the local sqlite file and against postgres.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("key not found")

type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (Record) TableName() string {
	return "kv_records"
}

type KV struct {
	DB *gorm.DB
}

// Open connects the store: postgres when databaseURL is set, the local
// sqlite file otherwise.
func Open(sqlitePath, databaseURL string) (*KV, error) {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(sqlitePath), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate kv store: %w", err)
	}
	return &KV{DB: db}, nil
}

func (kv *KV) Get(ctx context.Context, key string) (string, error) {
	var rec Record
	if err := kv.DB.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%q: %w", key, ErrNotFound)
		}
		return "", err
	}
	return rec.Value, nil
}

func (kv *KV) Put(ctx context.Context, key, value string) error {
	rec := Record{Key: key, Value: value}
	return kv.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}

// Delete is idempotent: removing an absent key is not an error.
func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.DB.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}

func (kv *KV) Close() error {
	sqlDB, err := kv.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
