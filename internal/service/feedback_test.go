package service

import (
	"context"
	"testing"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDeliveredOrder(t *testing.T, db *gorm.DB, userID string) *model.Order {
	t.Helper()

	order := &model.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Status:        model.OrderDelivered,
		TotalPrice:    decimal.NewFromInt(100),
		PaymentStatus: model.PaymentCompleted,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestSubmitFeedback(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewOrderRepository(db))
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	order := seedDeliveredOrder(t, db, user.ID)

	comment := "Fast delivery"
	feedback, err := svc.Submit(ctx, order.ID, user.ID, 5, &comment)
	require.NoError(t, err)
	assert.Equal(t, 5, feedback.Rating)
	require.NotNil(t, feedback.User)
	assert.Equal(t, "asha", feedback.User.Name)

	// one feedback per order
	_, err = svc.Submit(ctx, order.ID, user.ID, 4, nil)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeBadRequest, appErr.Code)
}

func TestSubmitFeedbackGuards(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewOrderRepository(db))
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	stranger := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)
	order := seedDeliveredOrder(t, db, user.ID)

	_, err := svc.Submit(ctx, order.ID, user.ID, 6, nil)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeBadRequest, appErr.Code)

	_, err = svc.Submit(ctx, "no-such-order", user.ID, 3, nil)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeResourceNotFound, appErr.Code)

	_, err = svc.Submit(ctx, order.ID, stranger.ID, 3, nil)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeForbidden, appErr.Code)

	// undelivered orders cannot be reviewed
	require.NoError(t, db.Model(&model.Order{}).Where("id = ?", order.ID).
		Update("status", model.OrderPending).Error)
	_, err = svc.Submit(ctx, order.ID, user.ID, 3, nil)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeBadRequest, appErr.Code)
}

func TestFeedbackStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewOrderRepository(db))
	ctx := context.Background()

	userA := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	userB := testutil.SeedUser(t, db, "ravi", model.RoleCustomer)

	_, err := svc.Submit(ctx, seedDeliveredOrder(t, db, userA.ID).ID, userA.ID, 5, nil)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, seedDeliveredOrder(t, db, userB.ID).ID, userB.ID, 3, nil)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
	assert.EqualValues(t, 1, stats.Distribution[5])
	assert.EqualValues(t, 1, stats.Distribution[3])
}
