package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []OrderNotification
}

func (n *recordingNotifier) NotifyNewOrder(notification OrderNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *recordingNotifier) Close() {}

func (n *recordingNotifier) notifications() []OrderNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]OrderNotification(nil), n.sent...)
}

func newOrderService(db *gorm.DB, notifier Notifier) OrderService {
	return NewOrderService(
		db,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewVariantRepository(db),
		notifier,
	)
}

var testAddress = json.RawMessage(`{"line1":"12 MG Road","city":"Hyderabad","pincode":"500001"}`)

func TestCheckout(t *testing.T) {
	db := testutil.NewTestDB(t)
	notifier := &recordingNotifier{}
	svc := newOrderService(db, notifier)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variantA := testutil.SeedProduct(t, db, "Physics Notes", decimal.NewFromInt(100), 5)
	_, variantB := testutil.SeedProduct(t, db, "Graph Sheets", decimal.NewFromInt(50), 5)
	testutil.SeedCartItem(t, db, user.ID, variantA.ID, 2)
	testutil.SeedCartItem(t, db, user.ID, variantB.ID, 1)

	order, err := svc.Checkout(ctx, user.ID, testAddress)
	require.NoError(t, err)

	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, model.PaymentPending, order.PaymentStatus)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(250)), "total was %s", order.TotalPrice)
	assert.Len(t, order.Items, 2)
	assert.JSONEq(t, string(testAddress), string(order.AddressSnapshot))

	// inventory is decremented per line
	var a, b model.ProductVariant
	require.NoError(t, db.First(&a, "id = ?", variantA.ID).Error)
	require.NoError(t, db.First(&b, "id = ?", variantB.ID).Error)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, 4, b.Stock)

	// cart is emptied
	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	sent := notifier.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, order.ID, sent[0].OrderID)
	assert.Equal(t, "asha", sent[0].CustomerName)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})

	user := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)

	_, err := svc.Checkout(context.Background(), user.ID, testAddress)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeBadRequest, appErr.Code)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Lab Manual", decimal.NewFromInt(80), 1)
	testutil.SeedCartItem(t, db, user.ID, variant.ID, 2)

	_, err := svc.Checkout(ctx, user.ID, testAddress)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeInsufficientStock, appErr.Code)

	// nothing mutated: stock, cart and orders are untouched
	var v model.ProductVariant
	require.NoError(t, db.First(&v, "id = ?", variant.ID).Error)
	assert.Equal(t, 1, v.Stock)

	var cartCount, orderCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 1, cartCount)
	assert.Zero(t, orderCount)

	// retrying fails the same way
	_, err = svc.Checkout(ctx, user.ID, testAddress)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeInsufficientStock, appErr.Code)
}

func TestCheckoutInactiveProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})

	user := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	product, variant := testutil.SeedProduct(t, db, "Discontinued Register", decimal.NewFromInt(40), 10)
	testutil.SeedCartItem(t, db, user.ID, variant.ID, 1)
	require.NoError(t, db.Model(product).Update("is_active", false).Error)

	_, err := svc.Checkout(context.Background(), user.ID, testAddress)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)
}

func TestCheckoutPriceSnapshot(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Atlas", decimal.NewFromInt(120), 5)
	testutil.SeedCartItem(t, db, user.ID, variant.ID, 1)

	order, err := svc.Checkout(ctx, user.ID, testAddress)
	require.NoError(t, err)

	// a later price change must not rewrite the order
	require.NoError(t, db.Model(&model.ProductVariant{}).Where("id = ?", variant.ID).
		Update("price", decimal.NewFromInt(200)).Error)

	reloaded, err := svc.Get(ctx, user.ID, false, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.True(t, reloaded.Items[0].PriceSnapshot.Equal(decimal.NewFromInt(120)))
	assert.True(t, reloaded.TotalPrice.Equal(decimal.NewFromInt(120)))
}

func TestCheckoutConcurrentLastUnit(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})
	ctx := context.Background()

	_, variant := testutil.SeedProduct(t, db, "Limited Print", decimal.NewFromInt(300), 1)
	userA := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	userB := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	testutil.SeedCartItem(t, db, userA.ID, variant.ID, 1)
	testutil.SeedCartItem(t, db, userB.ID, variant.ID, 1)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, userID := range []string{userA.ID, userB.ID} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Checkout(ctx, id, testAddress)
			results <- err
		}(userID)
	}
	wg.Wait()
	close(results)

	var successes, stockFailures int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		appErr, isApp := apperr.As(err)
		require.True(t, isApp, "unexpected error: %v", err)
		require.Equal(t, apperr.CodeInsufficientStock, appErr.Code)
		stockFailures++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, stockFailures)

	var v model.ProductVariant
	require.NoError(t, db.First(&v, "id = ?", variant.ID).Error)
	assert.Zero(t, v.Stock)
}

func TestGetOrderOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})
	ctx := context.Background()

	owner := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	stranger := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Notebook", decimal.NewFromInt(30), 5)
	testutil.SeedCartItem(t, db, owner.ID, variant.ID, 1)

	order, err := svc.Checkout(ctx, owner.ID, testAddress)
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger.ID, false, order.ID)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)

	// admins see every order
	got, err := svc.Get(ctx, stranger.ID, true, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestCancelOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Notebook", decimal.NewFromInt(30), 5)
	testutil.SeedCartItem(t, db, user.ID, variant.ID, 1)

	order, err := svc.Checkout(ctx, user.ID, testAddress)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCancelled, cancelled.Status)

	// delivered orders cannot be cancelled
	require.NoError(t, db.Model(&model.Order{}).Where("id = ?", order.ID).
		Update("status", model.OrderDelivered).Error)
	_, err = svc.Cancel(ctx, user.ID, order.ID)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeBadRequest, appErr.Code)
}

func TestAdminUpdateOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService(db, &recordingNotifier{})
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Notebook", decimal.NewFromInt(30), 5)
	testutil.SeedCartItem(t, db, user.ID, variant.ID, 1)

	order, err := svc.Checkout(ctx, user.ID, testAddress)
	require.NoError(t, err)

	status := string(model.OrderProcessing)
	payment := string(model.PaymentCompleted)
	updated, err := svc.AdminUpdate(ctx, order.ID, &status, &payment)
	require.NoError(t, err)
	assert.Equal(t, model.OrderProcessing, updated.Status)
	assert.Equal(t, model.PaymentCompleted, updated.PaymentStatus)

	bogus := "SHIPPED_TO_MARS"
	_, err = svc.AdminUpdate(ctx, order.ID, &bogus, nil)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeInvalidOrderStatus, appErr.Code)

	_, err = svc.AdminUpdate(ctx, order.ID, nil, nil)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeBadRequest, appErr.Code)
}
