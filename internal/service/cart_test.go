package service

import (
	"context"
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

func newCartService(db *gorm.DB) CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewVariantRepository(db))
}

func TestAddItemUpsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Sketch Pens", decimal.NewFromInt(60), 20)

	item, err := svc.AddItem(ctx, user.ID, variant.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// adding the same variant again bumps the existing line
	item, err = svc.AddItem(ctx, user.ID, variant.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	product, variant := testutil.SeedProduct(t, db, "Stapler", decimal.NewFromInt(90), 10)

	_, err := svc.AddItem(ctx, user.ID, variant.ID, 0)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)

	_, err = svc.AddItem(ctx, user.ID, "no-such-variant", 1)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)

	// inactive products cannot be carted
	require.NoError(t, db.Model(product).Update("is_active", false).Error)
	_, err = svc.AddItem(ctx, user.ID, variant.ID, 1)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)
}

func TestCartTotals(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variantA := testutil.SeedProduct(t, db, "Compass Box", decimal.NewFromInt(150), 10)
	_, variantB := testutil.SeedProduct(t, db, "Eraser Pack", decimal.NewFromInt(25), 10)
	testutil.SeedCartItem(t, db, user.ID, variantA.ID, 2)
	testutil.SeedCartItem(t, db, user.ID, variantB.ID, 4)

	items, total, count, err := svc.GetCart(ctx, user.ID, 0, 20)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.EqualValues(t, 2, count)
	assert.True(t, total.Equal(decimal.NewFromInt(400)), "total was %s", total)

	// pagination trims the page but the total still covers the whole cart
	items, total, count, err = svc.GetCart(ctx, user.ID, 0, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 2, count)
	assert.True(t, total.Equal(decimal.NewFromInt(400)))
}

func TestCartItemOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	owner := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	stranger := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Scale", decimal.NewFromInt(15), 10)
	item := testutil.SeedCartItem(t, db, owner.ID, variant.ID, 1)

	_, err := svc.UpdateItem(ctx, stranger.ID, item.ID, 3)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)

	err = svc.RemoveItem(ctx, stranger.ID, item.ID)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)

	updated, err := svc.UpdateItem(ctx, owner.ID, item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	require.NoError(t, svc.RemoveItem(ctx, owner.ID, item.ID))
}

func TestClearCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newCartService(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	_, variant := testutil.SeedProduct(t, db, "Glue Stick", decimal.NewFromInt(35), 10)
	testutil.SeedCartItem(t, db, user.ID, variant.ID, 2)

	require.NoError(t, svc.Clear(ctx, user.ID))

	items, _, count, err := svc.GetCart(ctx, user.ID, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, count)
}
