package repository

import (
	"context"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	Exists(ctx context.Context, userID, productID string) (bool, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]*model.ProductLike, error)
}

type likeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepoImpl{db: db}
}

func (r *likeRepoImpl) Add(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).Create(&model.ProductLike{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
	}).Error
}

func (r *likeRepoImpl) Remove(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.ProductLike{}).Error
}

func (r *likeRepoImpl) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductLike{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepoImpl) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductLike{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *likeRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.ProductLike, error) {
	var likes []*model.ProductLike
	err := r.db.WithContext(ctx).
		Preload("Product.Variants").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
