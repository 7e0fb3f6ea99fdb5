package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	// Checkout turns the user's cart into an order: validates stock, creates
	// the order with snapshot pricing, decrements inventory and clears the
	// cart in one transaction, then notifies admins best-effort.
	Checkout(ctx context.Context, userID string, address json.RawMessage) (*model.Order, error)
	ListForUser(ctx context.Context, userID string, offset, limit int) ([]*model.Order, int64, error)
	Get(ctx context.Context, userID string, isAdmin bool, orderID string) (*model.Order, error)
	Cancel(ctx context.Context, userID string, orderID string) (*model.Order, error)
	ListAll(ctx context.Context, filter repository.OrderFilter, offset, limit int) ([]*model.Order, int64, error)
	AdminUpdate(ctx context.Context, orderID string, status, paymentStatus *string) (*model.Order, error)
	AdminCancel(ctx context.Context, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	variantRepo repository.VariantRepository
	notifier    Notifier
}

func NewOrderService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	variantRepo repository.VariantRepository,
	notifier Notifier,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		variantRepo: variantRepo,
		notifier:    notifier,
	}
}

func (s *orderServiceImpl) Checkout(ctx context.Context, userID string, address json.RawMessage) (*model.Order, error) {
	cartItems, err := s.cartRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if len(cartItems) == 0 {
		return nil, apperr.BadRequest("Cart is empty")
	}

	// Validate before touching storage. The decrement below re-checks stock
	// inside the transaction, so a concurrent checkout can still lose there.
	for _, item := range cartItems {
		variant := item.Variant
		if variant == nil || variant.Product == nil || !variant.Product.IsActive {
			return nil, apperr.NotFound("Product variant")
		}
		if variant.Stock < item.Quantity {
			return nil, apperr.InsufficientStock("Insufficient stock for one or more items")
		}
	}

	orderID := uuid.NewString()
	totalPrice := decimal.Zero
	orderItems := make([]*model.OrderItem, len(cartItems))
	for i, item := range cartItems {
		// Price is snapshotted from the variant, never from client input.
		snapshot := item.Variant.Price
		totalPrice = totalPrice.Add(snapshot.Mul(decimal.NewFromInt(int64(item.Quantity))))

		orderItems[i] = &model.OrderItem{
			ID:               uuid.NewString(),
			OrderID:          orderID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			PriceSnapshot:    snapshot,
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, &model.Order{
			ID:              orderID,
			UserID:          userID,
			Status:          model.OrderPending,
			TotalPrice:      totalPrice,
			PaymentStatus:   model.PaymentPending,
			AddressSnapshot: address,
		}); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		for _, item := range orderItems {
			rows, err := s.variantRepo.DecrementStock(ctx, tx, item.ProductVariantID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if rows == 0 {
				// Lost a concurrent race or the variant vanished; roll the
				// whole order back.
				return apperr.InsufficientStock("Insufficient stock for one or more items")
			}
		}

		if err := s.cartRepo.ClearUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}

	customerName := "Customer"
	if cartItems[0].User != nil {
		customerName = cartItems[0].User.Name
	}
	s.notifier.NotifyNewOrder(OrderNotification{
		OrderID:      order.ID,
		TotalPrice:   order.TotalPrice,
		CustomerName: customerName,
		ItemCount:    len(order.Items),
	})

	return order, nil
}

func (s *orderServiceImpl) ListForUser(ctx context.Context, userID string, offset, limit int) ([]*model.Order, int64, error) {
	return s.orderRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *orderServiceImpl) Get(ctx context.Context, userID string, isAdmin bool, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order")
		}
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, apperr.NotFound("Order")
	}
	return order, nil
}

func (s *orderServiceImpl) Cancel(ctx context.Context, userID string, orderID string) (*model.Order, error) {
	order, err := s.Get(ctx, userID, false, orderID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, order)
}

func (s *orderServiceImpl) AdminCancel(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.Get(ctx, "", true, orderID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, order)
}

func (s *orderServiceImpl) cancel(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.Status == model.OrderDelivered {
		return nil, apperr.BadRequest("Order already delivered")
	}
	err := s.orderRepo.UpdateStatus(ctx, order.ID, map[string]interface{}{
		"status": model.OrderCancelled,
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, order.ID)
}

func (s *orderServiceImpl) ListAll(ctx context.Context, filter repository.OrderFilter, offset, limit int) ([]*model.Order, int64, error) {
	return s.orderRepo.ListAll(ctx, filter, offset, limit)
}

func (s *orderServiceImpl) AdminUpdate(ctx context.Context, orderID string, status, paymentStatus *string) (*model.Order, error) {
	updates := map[string]interface{}{}

	if status != nil {
		switch model.OrderStatus(*status) {
		case model.OrderPending, model.OrderProcessing, model.OrderDelivered, model.OrderCancelled:
			updates["status"] = *status
		default:
			return nil, apperr.New(apperr.CodeInvalidOrderStatus, "Invalid order status", 400)
		}
	}
	if paymentStatus != nil {
		switch model.PaymentStatus(*paymentStatus) {
		case model.PaymentPending, model.PaymentCompleted, model.PaymentFailed:
			updates["payment_status"] = *paymentStatus
		default:
			return nil, apperr.New(apperr.CodeInvalidOrderStatus, "Invalid payment status", 400)
		}
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("Nothing to update")
	}

	err := s.orderRepo.UpdateStatus(ctx, orderID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order")
		}
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, orderID)
}
