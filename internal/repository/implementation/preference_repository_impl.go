package implementation

import (
	"context"
	"errors"

	"github.com/annaddsgr/Portfolio/internal/model"
	"github.com/annaddsgr/Portfolio/internal/repository/contract"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const preferenceKeyPrefix = "visitor:prefs:"

// RedisPreferenceRepository stores each visitor as one hash.
type RedisPreferenceRepository struct {
	rdb *redis.Client
}

func NewRedisPreferenceRepository(rdb *redis.Client) contract.PreferenceRepository {
	return &RedisPreferenceRepository{rdb: rdb}
}

func (r *RedisPreferenceRepository) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	v, err := r.rdb.HGet(ctx, preferenceKeyPrefix+visitorID, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisPreferenceRepository) Set(ctx context.Context, visitorID, key, value string) error {
	return r.rdb.HSet(ctx, preferenceKeyPrefix+visitorID, key, value).Err()
}

type GormPreferenceRepository struct {
	db *gorm.DB
}

func NewGormPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &GormPreferenceRepository{db: db}
}

func (r *GormPreferenceRepository) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	var pref model.VisitorPreference
	err := r.db.WithContext(ctx).
		Where("visitor_id = ? AND key = ?", visitorID, key).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

func (r *GormPreferenceRepository) Set(ctx context.Context, visitorID, key, value string) error {
	pref := model.VisitorPreference{VisitorId: visitorID, Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}
