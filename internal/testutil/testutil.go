// Package testutil provides an in-memory database and seed helpers shared by
// the service and repository tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/client"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewTestDB opens a fresh in-memory sqlite database with the full schema.
// The pool is capped at a single connection so concurrent transactions
// serialize instead of tripping over sqlite's writer lock.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func SeedSubject(t *testing.T, db *gorm.DB, name string) *model.Subject {
	t.Helper()

	subject := &model.Subject{ID: uuid.NewString(), Name: name}
	require.NoError(t, db.Create(subject).Error)
	return subject
}

// SeedProduct creates an active product with a single variant at the given
// price and stock.
func SeedProduct(t *testing.T, db *gorm.DB, title string, price decimal.Decimal, stock int) (*model.Product, *model.ProductVariant) {
	t.Helper()

	subject := SeedSubject(t, db, "subject-"+title)
	product := &model.Product{
		ID:        uuid.NewString(),
		Title:     title,
		BasePrice: price,
		SubjectID: subject.ID,
		FileType:  model.FileNone,
		IsActive:  true,
	}
	require.NoError(t, db.Create(product).Error)

	variant := &model.ProductVariant{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		VariantType: model.VariantBlackAndWhite,
		Price:       price,
		Stock:       stock,
		SKU:         "sku-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(variant).Error)
	return product, variant
}

func SeedCartItem(t *testing.T, db *gorm.DB, userID, variantID string, quantity int) *model.CartItem {
	t.Helper()

	item := &model.CartItem{
		ID:               uuid.NewString(),
		UserID:           userID,
		ProductVariantID: variantID,
		Quantity:         quantity,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
