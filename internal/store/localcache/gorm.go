package localcache

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row is one key/value pair scoped to a client profile.
type Row struct {
	ID        uint   `gorm:"primaryKey"`
	ProfileID string `gorm:"uniqueIndex:idx_cache_profile_key"`
	CacheKey  string `gorm:"column:cache_key;uniqueIndex:idx_cache_profile_key"`
	Value     string
	UpdatedAt time.Time
}

func (Row) TableName() string { return "cache_entries" }

// GormCache persists cache entries in the relational database so a profile's
// optimistic pro flag survives restarts, like browser local storage would.
type GormCache struct {
	db *gorm.DB
}

func NewGormCache(db *gorm.DB) *GormCache {
	return &GormCache{db: db}
}

func (g *GormCache) Get(ctx context.Context, profileID, key string) (string, error) {
	var row Row
	err := g.db.WithContext(ctx).
		Where("profile_id = ? AND cache_key = ?", profileID, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (g *GormCache) Set(ctx context.Context, profileID, key, value string) error {
	row := Row{ProfileID: profileID, CacheKey: key, Value: value, UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "cache_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (g *GormCache) Delete(ctx context.Context, profileID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).
		Where("profile_id = ? AND cache_key IN ?", profileID, keys).
		Delete(&Row{}).Error
}
