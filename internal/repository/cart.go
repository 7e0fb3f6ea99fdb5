package repository

import (
	"context"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.CartItem, error)
	ListAllByUser(ctx context.Context, userID string) ([]*model.CartItem, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// Upsert adds a cart line; re-adding the same variant increments quantity
	// on the (user_id, product_variant_id) unique key.
	Upsert(ctx context.Context, userID, productVariantID string, quantity int) (*model.CartItem, error)
	FindByID(ctx context.Context, id string) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	ClearUser(ctx context.Context, tx *gorm.DB, userID string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

func (r *cartRepoImpl) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Variant.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepoImpl) ListAllByUser(ctx context.Context, userID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Variant.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepoImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *cartRepoImpl) Upsert(ctx context.Context, userID, productVariantID string, quantity int) (*model.CartItem, error) {
	item := &model.CartItem{
		ID:               uuid.NewString(),
		UserID:           userID,
		ProductVariantID: productVariantID,
		Quantity:         quantity,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the post-upsert quantity and the joined
	// variant data.
	var out model.CartItem
	err = r.db.WithContext(ctx).
		Preload("Variant.Product").
		Where("user_id = ? AND product_variant_id = ?", userID, productVariantID).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *cartRepoImpl) FindByID(ctx context.Context, id string) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Variant.Product").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepoImpl) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	result := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) ClearUser(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
