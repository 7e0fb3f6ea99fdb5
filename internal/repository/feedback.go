package repository

import (
	"context"
	"database/sql"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"gorm.io/gorm"
)

type FeedbackStats struct {
	Total         int64
	AverageRating float64
	Distribution  map[int]int64
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.OrderFeedback) error
	FindByOrder(ctx context.Context, orderID string) (*model.OrderFeedback, error)
	ListAll(ctx context.Context, offset, limit int) ([]*model.OrderFeedback, int64, error)
	Stats(ctx context.Context) (*FeedbackStats, error)
}

type feedbackRepoImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepoImpl{db: db}
}

func (r *feedbackRepoImpl) Create(ctx context.Context, feedback *model.OrderFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepoImpl) FindByOrder(ctx context.Context, orderID string) (*model.OrderFeedback, error) {
	var feedback model.OrderFeedback
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("order_id = ?", orderID).
		First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepoImpl) ListAll(ctx context.Context, offset, limit int) ([]*model.OrderFeedback, int64, error) {
	var feedbacks []*model.OrderFeedback
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.OrderFeedback{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&feedbacks).Error
	if err != nil {
		return nil, 0, err
	}

	return feedbacks, total, nil
}

func (r *feedbackRepoImpl) Stats(ctx context.Context) (*FeedbackStats, error) {
	stats := &FeedbackStats{Distribution: make(map[int]int64)}

	if err := r.db.WithContext(ctx).Model(&model.OrderFeedback{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&model.OrderFeedback{}).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if avg.Valid {
		stats.AverageRating = avg.Float64
	}

	var rows []struct {
		Rating int
		Count  int64
	}
	err = r.db.WithContext(ctx).Model(&model.OrderFeedback{}).
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.Distribution[row.Rating] = row.Count
	}

	return stats, nil
}
