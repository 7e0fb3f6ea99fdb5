package service

import (
	"context"
	"errors"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	GetCart(ctx context.Context, userID string, offset, limit int) ([]*model.CartItem, decimal.Decimal, int64, error)
	AddItem(ctx context.Context, userID, productVariantID string, quantity int) (*model.CartItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type cartServiceImpl struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	variantRepo repository.VariantRepository
}

func NewCartService(db *gorm.DB, cartRepo repository.CartRepository, variantRepo repository.VariantRepository) CartService {
	return &cartServiceImpl{
		db:          db,
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string, offset, limit int) ([]*model.CartItem, decimal.Decimal, int64, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, decimal.Zero, 0, err
	}

	count, err := s.cartRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, 0, err
	}

	// Cart total covers the whole cart, not just the current page.
	all, err := s.cartRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, 0, err
	}
	total := decimal.Zero
	for _, item := range all {
		if item.Variant != nil {
			total = total.Add(item.Variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return items, total, count, nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productVariantID string, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("Quantity must be at least 1", "quantity")
	}

	variant, err := s.variantRepo.FindByID(ctx, productVariantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product variant")
		}
		return nil, err
	}
	if variant.Product == nil || !variant.Product.IsActive {
		return nil, apperr.NotFound("Product variant")
	}

	return s.cartRepo.Upsert(ctx, userID, productVariantID, quantity)
}

func (s *cartServiceImpl) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("Quantity must be at least 1", "quantity")
	}

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.FindByID(ctx, item.ID)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, itemID string) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, item.ID)
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID string) error {
	return s.cartRepo.ClearUser(ctx, s.db, userID)
}

func (s *cartServiceImpl) ownedItem(ctx context.Context, userID, itemID string) (*model.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Cart item")
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, apperr.NotFound("Cart item")
	}
	return item, nil
}
