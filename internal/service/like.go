package service

import (
	"context"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
)

type LikeService interface {
	// Toggle flips the user's like on a product and reports the new state.
	Toggle(ctx context.Context, userID, productID string) (*dto.LikeResponse, error)
	ListForUser(ctx context.Context, userID string) ([]*model.ProductLike, error)
	StatsFor(ctx context.Context, userID, productID string) (int64, bool, error)
}

type likeServiceImpl struct {
	likeRepo   repository.LikeRepository
	catalogSvc CatalogService
}

func NewLikeService(likeRepo repository.LikeRepository, catalogSvc CatalogService) LikeService {
	return &likeServiceImpl{
		likeRepo:   likeRepo,
		catalogSvc: catalogSvc,
	}
}

func (s *likeServiceImpl) Toggle(ctx context.Context, userID, productID string) (*dto.LikeResponse, error) {
	if _, err := s.catalogSvc.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if liked {
		err = s.likeRepo.Remove(ctx, userID, productID)
	} else {
		err = s.likeRepo.Add(ctx, userID, productID)
	}
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{
		ProductID: productID,
		Liked:     !liked,
		Count:     count,
	}, nil
}

func (s *likeServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.ProductLike, error) {
	return s.likeRepo.ListByUser(ctx, userID)
}

func (s *likeServiceImpl) StatsFor(ctx context.Context, userID, productID string) (int64, bool, error) {
	count, err := s.likeRepo.CountByProduct(ctx, productID)
	if err != nil {
		return 0, false, err
	}
	liked := false
	if userID != "" {
		liked, err = s.likeRepo.Exists(ctx, userID, productID)
		if err != nil {
			return 0, false, err
		}
	}
	return count, liked, nil
}
