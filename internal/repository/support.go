package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportRepository manages the single support-info row shown on the
// storefront contact page.
type SupportRepository interface {
	Get(ctx context.Context) (*model.SupportInfo, error)
	Upsert(ctx context.Context, updates map[string]interface{}) (*model.SupportInfo, error)
}

type supportRepoImpl struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepoImpl{db: db}
}

func (r *supportRepoImpl) Get(ctx context.Context) (*model.SupportInfo, error) {
	var info model.SupportInfo
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *supportRepoImpl) Upsert(ctx context.Context, updates map[string]interface{}) (*model.SupportInfo, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		info := &model.SupportInfo{ID: uuid.NewString()}
		applySupportUpdates(info, updates)
		if err := r.db.WithContext(ctx).Create(info).Error; err != nil {
			return nil, err
		}
		return info, nil
	}

	updates["updated_at"] = time.Now()
	err = r.db.WithContext(ctx).Model(&model.SupportInfo{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func applySupportUpdates(info *model.SupportInfo, updates map[string]interface{}) {
	set := func(dst **string, key string) {
		if v, ok := updates[key]; ok {
			if s, ok := v.(string); ok {
				*dst = &s
			}
		}
	}
	set(&info.Phone, "phone")
	set(&info.Email, "email")
	set(&info.Whatsapp, "whatsapp")
	set(&info.Address, "address")
	set(&info.Hours, "hours")
}
