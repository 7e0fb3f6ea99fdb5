package repository

import (
	"context"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Search     string
	SubjectID  string
	CategoryID string
	IsActive   *bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter, offset, limit int) ([]*model.Product, int64, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id string) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepoImpl) applyFilter(q *gorm.DB, filter ProductFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR isbn LIKE ?", like, like)
	}
	if filter.SubjectID != "" {
		q = q.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	return q
}

func (r *productRepoImpl) List(ctx context.Context, filter ProductFilter, offset, limit int) ([]*model.Product, int64, error) {
	var products []*model.Product
	var total int64

	base := r.applyFilter(r.db.WithContext(ctx).Model(&model.Product{}), filter)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Variants").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
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

// Deactivate soft-deletes a product so historical order items keep their
// reference.
func (r *productRepoImpl) Deactivate(ctx context.Context, id string) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}
