package data

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresKV struct {
	db     *gorm.DB
	prefix string
}

func newPostgresKV(db *gorm.DB, prefix string) *postgresKV {
	return &postgresKV{db: db, prefix: prefix}
}

func (p *postgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := p.db.WithContext(ctx).Where("key = ?", p.prefix+key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get entry %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (p *postgresKV) Set(ctx context.Context, key, value string) error {
	entry := &Entry{Key: p.prefix + key, Value: value}

	// Use GORM's ON CONFLICT clause for upsert
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert entry %q: %w", key, err)
	}
	return nil
}

func (p *postgresKV) Delete(ctx context.Context, key string) error {
	err := p.db.WithContext(ctx).Where("key = ?", p.prefix+key).Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete entry %q: %w", key, err)
	}
	return nil
}
