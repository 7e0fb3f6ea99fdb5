package service

import (
	"context"
	"errors"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackService interface {
	Submit(ctx context.Context, orderID, userID string, rating int, comment *string) (*model.OrderFeedback, error)
	ForOrder(ctx context.Context, orderID string) (*model.OrderFeedback, error)
	ListAll(ctx context.Context, offset, limit int) ([]*model.OrderFeedback, int64, error)
	Stats(ctx context.Context) (*repository.FeedbackStats, error)
}

type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	orderRepo    repository.OrderRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, orderRepo repository.OrderRepository) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		orderRepo:    orderRepo,
	}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, orderID, userID string, rating int, comment *string) (*model.OrderFeedback, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.BadRequest("Rating must be between 1 and 5")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order")
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperr.Forbidden("You can only submit feedback for your own orders")
	}
	if order.Status != model.OrderDelivered {
		return nil, apperr.BadRequest("Feedback can only be submitted for delivered orders")
	}

	if _, err := s.feedbackRepo.FindByOrder(ctx, orderID); err == nil {
		return nil, apperr.BadRequest("Feedback already submitted for this order")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feedback := &model.OrderFeedback{
		ID:      uuid.NewString(),
		OrderID: orderID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return s.feedbackRepo.FindByOrder(ctx, orderID)
}

func (s *feedbackServiceImpl) ForOrder(ctx context.Context, orderID string) (*model.OrderFeedback, error) {
	feedback, err := s.feedbackRepo.FindByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Feedback")
		}
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackServiceImpl) ListAll(ctx context.Context, offset, limit int) ([]*model.OrderFeedback, int64, error) {
	return s.feedbackRepo.ListAll(ctx, offset, limit)
}

func (s *feedbackServiceImpl) Stats(ctx context.Context) (*repository.FeedbackStats, error) {
	return s.feedbackRepo.Stats(ctx)
}
