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

func newLikeService(db *gorm.DB) LikeService {
	catalog := NewCatalogService(
		repository.NewCategoryRepository(db),
		repository.NewSubjectRepository(db),
		repository.NewProductRepository(db),
		repository.NewVariantRepository(db),
	)
	return NewLikeService(repository.NewLikeRepository(db), catalog)
}

func TestToggleLike(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	product, _ := testutil.SeedProduct(t, db, "Highlighters", decimal.NewFromInt(70), 10)

	resp, err := svc.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.EqualValues(t, 1, resp.Count)

	// toggling again removes the like
	resp, err = svc.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Zero(t, resp.Count)

	_, err = svc.Toggle(ctx, user.ID, "no-such-product")
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)
}

func TestLikeStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	userA := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	userB := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	product, _ := testutil.SeedProduct(t, db, "Highlighters", decimal.NewFromInt(70), 10)

	_, err := svc.Toggle(ctx, userA.ID, product.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, userB.ID, product.ID)
	require.NoError(t, err)

	count, liked, err := svc.StatsFor(ctx, userA.ID, product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.True(t, liked)

	// anonymous callers still see the count
	count, liked, err = svc.StatsFor(ctx, "", product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.False(t, liked)

	likes, err := svc.ListForUser(ctx, userA.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	require.NotNil(t, likes[0].Product)
	assert.Equal(t, product.ID, likes[0].Product.ID)
}
