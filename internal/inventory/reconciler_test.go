package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

func setupTestDB(t *testing.T) *storage.SQLiteStorage {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	return db
}

func createProduct(t *testing.T, db *storage.SQLiteStorage, name string, stock int64) *types.Product {
	product := &types.Product{
		Name:  name,
		Price: decimal.RequireFromString("10.00"),
		Stock: stock,
	}
	require.NoError(t, db.CreateProduct(context.Background(), product))
	return product
}

func stockOf(t *testing.T, db *storage.SQLiteStorage, productID int64) int64 {
	product, err := db.GetProduct(context.Background(), productID)
	require.NoError(t, err)
	return product.Stock
}

func TestReserve_DecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 5)
	b := createProduct(t, db, "B", 10)

	err := Reserve(ctx, db, []types.OrderItem{
		{ProductID: a.ID, Quantity: 3},
		{ProductID: b.ID, Quantity: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stockOf(t, db, a.ID))
	assert.Equal(t, int64(6), stockOf(t, db, b.ID))
}

func TestReserve_InsufficientLeavesAllUnchanged(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 2)
	b := createProduct(t, db, "B", 10)

	err := Reserve(ctx, db, []types.OrderItem{
		{ProductID: a.ID, Quantity: 3},
		{ProductID: b.ID, Quantity: 1},
	})

	var insuff *types.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, a.ID, insuff.ProductID)
	assert.Equal(t, int64(2), insuff.Available)
	assert.Equal(t, int64(3), insuff.Requested)

	assert.Equal(t, int64(2), stockOf(t, db, a.ID))
	assert.Equal(t, int64(10), stockOf(t, db, b.ID))
}

func TestReserve_ReportsFirstFailingLine(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 0)
	b := createProduct(t, db, "B", 0)

	err := Reserve(ctx, db, []types.OrderItem{
		{ProductID: b.ID, Quantity: 1},
		{ProductID: a.ID, Quantity: 1},
	})

	var insuff *types.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, b.ID, insuff.ProductID, "first submitted line should be reported")
}

func TestReserve_DuplicateLinesCountCumulatively(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 5)

	err := Reserve(ctx, db, []types.OrderItem{
		{ProductID: a.ID, Quantity: 3},
		{ProductID: a.ID, Quantity: 3},
	})

	var insuff *types.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, int64(5), stockOf(t, db, a.ID))
}

func TestReserve_InvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 5)

	err := Reserve(ctx, db, []types.OrderItem{{ProductID: a.ID, Quantity: 0}})

	var invalid *types.InvalidQuantityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, int64(5), stockOf(t, db, a.ID))
}

func TestReserve_ProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	err := Reserve(ctx, db, []types.OrderItem{{ProductID: 999, Quantity: 1}})

	var notFound *types.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(999), notFound.ID)
}

func TestRelease_IncrementsStock(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 2)

	require.NoError(t, Release(ctx, db, []types.OrderItem{{ProductID: a.ID, Quantity: 3}}))
	assert.Equal(t, int64(5), stockOf(t, db, a.ID))
}

func TestRelease_DuplicateLinesAccumulate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 0)

	require.NoError(t, Release(ctx, db, []types.OrderItem{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: a.ID, Quantity: 3},
	}))
	assert.Equal(t, int64(5), stockOf(t, db, a.ID))
}

func TestReserveThenRelease_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 7)
	b := createProduct(t, db, "B", 4)

	items := []types.OrderItem{
		{ProductID: a.ID, Quantity: 5},
		{ProductID: b.ID, Quantity: 4},
	}
	require.NoError(t, Reserve(ctx, db, items))
	require.NoError(t, Release(ctx, db, items))

	assert.Equal(t, int64(7), stockOf(t, db, a.ID))
	assert.Equal(t, int64(4), stockOf(t, db, b.ID))
}

func TestCheckAvailability_ReturnsProducts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	a := createProduct(t, db, "A", 5)

	products, err := CheckAvailability(ctx, db, []types.OrderItem{{ProductID: a.ID, Quantity: 5}})
	require.NoError(t, err)
	require.Contains(t, products, a.ID)
	assert.Equal(t, "A", products[a.ID].Name)

	// No stock was touched
	assert.Equal(t, int64(5), stockOf(t, db, a.ID))
}
