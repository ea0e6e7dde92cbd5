package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahatGithub/QBoard/pkg/types"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	// Use in-memory database for testing
	storage, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NotNil(t, storage)
	return storage
}

func testProduct(name string, price string, stock int64) *types.Product {
	return &types.Product{
		Name:     name,
		Category: "electronics",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	assert.NotNil(t, storage)
	assert.NotNil(t, storage.db)
}

func TestCreateProduct(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 25)

	err := storage.CreateProduct(ctx, product)
	require.NoError(t, err)
	assert.Greater(t, product.ID, int64(0))
}

func TestGetProduct(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, product))

	retrieved, err := storage.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, retrieved.ID)
	assert.Equal(t, "Keyboard", retrieved.Name)
	assert.True(t, retrieved.Price.Equal(decimal.RequireFromString("79.99")))
	assert.Equal(t, int64(25), retrieved.Stock)
}

func TestGetProduct_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	_, err := storage.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProduct(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, product))

	product.Name = "Mechanical Keyboard"
	product.Price = decimal.RequireFromString("99.50")
	require.NoError(t, storage.UpdateProduct(ctx, product))

	retrieved, err := storage.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", retrieved.Name)
	assert.True(t, retrieved.Price.Equal(decimal.RequireFromString("99.50")))
}

func TestDeleteProduct(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, product))

	require.NoError(t, storage.DeleteProduct(ctx, product.ID))

	_, err := storage.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, storage.DeleteProduct(ctx, product.ID), ErrNotFound)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	keyboard := testProduct("Keyboard", "79.99", 25)
	require.NoError(t, storage.CreateProduct(ctx, keyboard))

	chair := &types.Product{Name: "Desk Chair", Category: "furniture", Price: decimal.RequireFromString("150"), Stock: 5}
	require.NoError(t, storage.CreateProduct(ctx, chair))

	all, err := storage.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	furniture, err := storage.ListProducts(ctx, ProductFilter{Category: "furniture"})
	require.NoError(t, err)
	require.Len(t, furniture, 1)
	assert.Equal(t, "Desk Chair", furniture[0].Name)
}

func TestAdjustStock(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 5)
	require.NoError(t, storage.CreateProduct(ctx, product))

	updated, err := storage.AdjustStock(ctx, product.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Stock)

	updated, err = storage.AdjustStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Stock)
}

func TestAdjustStock_Conflict(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 2)
	require.NoError(t, storage.CreateProduct(ctx, product))

	_, err := storage.AdjustStock(ctx, product.ID, -3)
	assert.ErrorIs(t, err, ErrStockConflict)

	// Row must be untouched after a conflict
	retrieved, err := storage.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), retrieved.Stock)
}

func TestAdjustStock_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	_, err := storage.AdjustStock(ctx, 999, -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStock_ExactlyToZero(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 3)
	require.NoError(t, storage.CreateProduct(ctx, product))

	updated, err := storage.AdjustStock(ctx, product.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Stock)
}

func TestTransaction_RollbackRestoresStock(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 5)
	require.NoError(t, storage.CreateProduct(ctx, product))

	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)

	_, err = tx.AdjustStock(ctx, product.ID, -4)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	retrieved, err := storage.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), retrieved.Stock)
}

func TestTransaction_CommitPersists(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	product := testProduct("Keyboard", "79.99", 5)
	require.NoError(t, storage.CreateProduct(ctx, product))

	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)

	_, err = tx.AdjustStock(ctx, product.ID, -4)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	retrieved, err := storage.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), retrieved.Stock)
}
