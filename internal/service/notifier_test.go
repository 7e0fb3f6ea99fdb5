package service

import (
	"context"
	"sync"
	"testing"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePushClient struct {
	mu    sync.Mutex
	calls [][]string
	data  []map[string]string
}

func (f *fakePushClient) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, tokens)
	f.data = append(f.data, data)
	return nil
}

func TestNotifierSendsToActiveAdmins(t *testing.T) {
	db := testutil.NewTestDB(t)
	push := &fakePushClient{}

	admin := testutil.SeedUser(t, db, "admin", model.RoleAdmin)
	adminToken := "device-token-1"
	require.NoError(t, db.Model(admin).Update("fcm_token", adminToken).Error)

	// deactivated admins and customers are skipped
	sleeper := testutil.SeedUser(t, db, "sleeper", model.RoleAdmin)
	require.NoError(t, db.Model(sleeper).Updates(map[string]interface{}{
		"fcm_token": "device-token-2",
		"is_active": false,
	}).Error)
	customer := testutil.SeedUser(t, db, "asha", model.RoleCustomer)
	require.NoError(t, db.Model(customer).Update("fcm_token", "device-token-3").Error)

	notifier := NewNotifier(push, repository.NewUserRepository(db))
	notifier.NotifyNewOrder(OrderNotification{
		OrderID:      "order-1",
		TotalPrice:   decimal.NewFromInt(250),
		CustomerName: "asha",
		ItemCount:    2,
	})
	notifier.Close()

	push.mu.Lock()
	defer push.mu.Unlock()
	require.Len(t, push.calls, 1)
	assert.Equal(t, []string{adminToken}, push.calls[0])
	assert.Equal(t, "new_order", push.data[0]["type"])
	assert.Equal(t, "order-1", push.data[0]["orderId"])
}

func TestNotifierNoAdminTokens(t *testing.T) {
	db := testutil.NewTestDB(t)
	push := &fakePushClient{}

	testutil.SeedUser(t, db, "asha", model.RoleCustomer)

	notifier := NewNotifier(push, repository.NewUserRepository(db))
	notifier.NotifyNewOrder(OrderNotification{OrderID: "order-1"})
	notifier.Close()

	push.mu.Lock()
	defer push.mu.Unlock()
	assert.Empty(t, push.calls)
}
