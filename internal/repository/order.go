package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderFilter struct {
	Status        string
	PaymentStatus string
	UserID        string
}

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Order, int64, error)
	ListAll(ctx context.Context, filter OrderFilter, offset, limit int) ([]*model.Order, int64, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error
	SumCompletedRevenue(ctx context.Context) (decimal.Decimal, error)
	Recent(ctx context.Context, n int) ([]*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Variant.Product").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Order, int64, error) {
	var orders []*model.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepoImpl) applyFilter(q *gorm.DB, filter OrderFilter) *gorm.DB {
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	return q
}

func (r *orderRepoImpl) ListAll(ctx context.Context, filter OrderFilter, offset, limit int) ([]*model.Order, int64, error) {
	var orders []*model.Order
	var total int64

	base := r.applyFilter(r.db.WithContext(ctx).Model(&model.Order{}), filter)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&model.Order{}).
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

func (r *orderRepoImpl) SumCompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	// Scanned as text so the sum stays exact.
	var sum sql.NullString
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("payment_status = ?", model.PaymentCompleted).
		Select("CAST(SUM(total_price) AS CHAR)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(sum.String)
}

func (r *orderRepoImpl) Recent(ctx context.Context, n int) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(n).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
