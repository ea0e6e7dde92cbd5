package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahatGithub/QBoard/pkg/types"
)

func createTestUser(t *testing.T, storage *SQLiteStorage) *types.User {
	user := &types.User{
		Username:     "buyer",
		Email:        "buyer@example.com",
		Role:         types.RoleUser,
		PasswordHash: "x",
	}
	require.NoError(t, storage.CreateUser(context.Background(), user))
	return user
}

func TestCreateOrder(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)

	order := &types.Order{
		UserID: user.ID,
		Status: types.OrderPending,
	}
	err := storage.CreateOrder(ctx, order)
	require.NoError(t, err)
	assert.Greater(t, order.ID, int64(0))
	assert.False(t, order.OrderDate.IsZero())
}

func TestGetOrder_WithItems(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)
	product := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, product))

	order := &types.Order{UserID: user.ID, Status: types.OrderPending}
	require.NoError(t, storage.CreateOrder(ctx, order))

	items := []types.OrderItem{{ProductID: product.ID, Quantity: 3}}
	require.NoError(t, storage.InsertOrderItems(ctx, order.ID, items))

	retrieved, err := storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, types.OrderPending, retrieved.Status)
	require.Len(t, retrieved.Items, 1)
	assert.Equal(t, product.ID, retrieved.Items[0].ProductID)
	assert.Equal(t, int64(3), retrieved.Items[0].Quantity)
}

func TestGetOrder_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	_, err := storage.GetOrder(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderHeader(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)
	order := &types.Order{UserID: user.ID, Status: types.OrderPending}
	require.NoError(t, storage.CreateOrder(ctx, order))

	order.Status = types.OrderCompleted
	order.TotalAmount = decimal.RequireFromString("30.00")
	require.NoError(t, storage.UpdateOrderHeader(ctx, order))

	retrieved, err := storage.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, types.OrderCompleted, retrieved.Status)
	assert.True(t, retrieved.TotalAmount.Equal(decimal.RequireFromString("30.00")))
}

func TestDeleteOrder_CascadesItems(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)
	product := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, product))

	order := &types.Order{UserID: user.ID, Status: types.OrderPending}
	require.NoError(t, storage.CreateOrder(ctx, order))
	require.NoError(t, storage.InsertOrderItems(ctx, order.ID, []types.OrderItem{{ProductID: product.ID, Quantity: 1}}))

	require.NoError(t, storage.DeleteOrder(ctx, order.ID))

	items, err := storage.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteOrderItems(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)
	product := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, product))

	order := &types.Order{UserID: user.ID, Status: types.OrderPending}
	require.NoError(t, storage.CreateOrder(ctx, order))
	require.NoError(t, storage.InsertOrderItems(ctx, order.ID, []types.OrderItem{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: product.ID, Quantity: 2},
	}))

	require.NoError(t, storage.DeleteOrderItems(ctx, order.ID))

	items, err := storage.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListOrders_Filters(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)

	other := &types.User{Username: "other", Role: types.RoleUser, PasswordHash: "x"}
	require.NoError(t, storage.CreateUser(ctx, other))

	pending := &types.Order{UserID: user.ID, Status: types.OrderPending}
	require.NoError(t, storage.CreateOrder(ctx, pending))
	completed := &types.Order{UserID: other.ID, Status: types.OrderCompleted}
	require.NoError(t, storage.CreateOrder(ctx, completed))

	byStatus, err := storage.ListOrders(ctx, OrderFilter{Status: types.OrderPending})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, pending.ID, byStatus[0].ID)

	byUser, err := storage.ListOrders(ctx, OrderFilter{UserID: other.ID})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, completed.ID, byUser[0].ID)
}

func TestListOrders_RecentOrdering(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	user := createTestUser(t, storage)

	older := &types.Order{UserID: user.ID, Status: types.OrderPending, OrderDate: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, storage.CreateOrder(ctx, older))
	newer := &types.Order{UserID: user.ID, Status: types.OrderPending, OrderDate: time.Now()}
	require.NoError(t, storage.CreateOrder(ctx, newer))

	recent, err := storage.ListOrders(ctx, OrderFilter{Recent: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, newer.ID, recent[0].ID)
}
