package repository

import (
	"context"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByPhoneOther(ctx context.Context, phone, excludeUserID string) (bool, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	UpdateFcmToken(ctx context.Context, id, fcmToken string) error
	List(ctx context.Context, offset, limit int) ([]*model.User, int64, error)
	Count(ctx context.Context) (int64, error)
	AdminFcmTokens(ctx context.Context) ([]string, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepoImpl) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepoImpl) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("phone = ?", phone).
		Count(&count).Error
	return count > 0, err
}

// ExistsByPhoneOther checks phone uniqueness while ignoring the user's own row.
func (r *userRepoImpl) ExistsByPhoneOther(ctx context.Context, phone, excludeUserID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("phone = ? AND id <> ?", phone, excludeUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepoImpl) UpdateFcmToken(ctx context.Context, id, fcmToken string) error {
	return r.Update(ctx, id, map[string]interface{}{"fcm_token": fcmToken})
}

func (r *userRepoImpl) List(ctx context.Context, offset, limit int) ([]*model.User, int64, error) {
	var users []*model.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *userRepoImpl) AdminFcmTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ? AND is_active = ? AND fcm_token IS NOT NULL", model.RoleAdmin, true).
		Pluck("fcm_token", &tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
