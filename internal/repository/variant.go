package repository

import (
	"context"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"gorm.io/gorm"
)

type VariantRepository interface {
	Create(ctx context.Context, variant *model.ProductVariant) error
	FindByID(ctx context.Context, id string) (*model.ProductVariant, error)
	FindByProduct(ctx context.Context, productID string) ([]*model.ProductVariant, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	// DecrementStock runs the guarded decrement inside tx. It only touches the
	// row when stock still covers qty; a zero rows-affected result means the
	// caller lost the race (or the variant vanished) and must roll back.
	DecrementStock(ctx context.Context, tx *gorm.DB, id string, qty int) (int64, error)
}

type variantRepoImpl struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepository {
	return &variantRepoImpl{db: db}
}

func (r *variantRepoImpl) Create(ctx context.Context, variant *model.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *variantRepoImpl) FindByID(ctx context.Context, id string) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&variant).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepoImpl) FindByProduct(ctx context.Context, productID string) ([]*model.ProductVariant, error) {
	var variants []*model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *variantRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.ProductVariant{}).
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

func (r *variantRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, id string, qty int) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.ProductVariant{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	return result.RowsAffected, result.Error
}
