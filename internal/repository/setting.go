package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.StoreSetting, error)
	GetAll(ctx context.Context) ([]*model.StoreSetting, error)
	Set(ctx context.Context, key string, valueJSON json.RawMessage) (*model.StoreSetting, error)
	Delete(ctx context.Context, key string) error
}

type settingRepoImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepoImpl{db: db}
}

func (r *settingRepoImpl) Get(ctx context.Context, key string) (*model.StoreSetting, error) {
	var setting model.StoreSetting
	err := r.db.WithContext(ctx).
		Where("`key` = ?", key).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepoImpl) GetAll(ctx context.Context) ([]*model.StoreSetting, error) {
	var settings []*model.StoreSetting
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepoImpl) Set(ctx context.Context, key string, valueJSON json.RawMessage) (*model.StoreSetting, error) {
	setting := &model.StoreSetting{
		ID:        uuid.NewString(),
		Key:       key,
		ValueJSON: valueJSON,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value_json": []byte(valueJSON),
			"updated_at": time.Now(),
		}),
	}).Create(setting).Error
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, key)
}

func (r *settingRepoImpl) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).
		Where("`key` = ?", key).
		Delete(&model.StoreSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
