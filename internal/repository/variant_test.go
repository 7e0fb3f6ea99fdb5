package repository

import (
	"context"
	"testing"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementStockGuard(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()

	_, variant := testutil.SeedProduct(t, db, "Ledger", decimal.NewFromInt(55), 3)

	rows, err := repo.DecrementStock(ctx, db, variant.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	// asking for more than remains matches no row, stock stays put
	rows, err = repo.DecrementStock(ctx, db, variant.ID, 2)
	require.NoError(t, err)
	assert.Zero(t, rows)

	var v model.ProductVariant
	require.NoError(t, db.First(&v, "id = ?", variant.ID).Error)
	assert.Equal(t, 1, v.Stock)

	// draining to exactly zero is allowed
	rows, err = repo.DecrementStock(ctx, db, variant.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	require.NoError(t, db.First(&v, "id = ?", variant.ID).Error)
	assert.Zero(t, v.Stock)
}

func TestDecrementStockUnknownVariant(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVariantRepository(db)

	rows, err := repo.DecrementStock(context.Background(), db, "no-such-variant", 1)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
