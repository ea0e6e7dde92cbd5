package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

func setup(t *testing.T) *Service {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db, zap.NewNop())
}

func TestCreate_Invalid(t *testing.T) {
	service := setup(t)

	err := service.Create(context.Background(), &types.Product{Name: ""})
	assert.Error(t, err)
}

func TestBulkCreate_AllOrNothing(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	batch := []*types.Product{
		{Name: "A", Price: decimal.RequireFromString("1.00"), Stock: 1},
		{Name: "", Price: decimal.Zero}, // invalid
	}
	err := service.BulkCreate(ctx, batch)
	require.Error(t, err)

	products, err := service.List(ctx, storage.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestBulkCreate(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	batch := []*types.Product{
		{Name: "A", Price: decimal.RequireFromString("1.00"), Stock: 1},
		{Name: "B", Price: decimal.RequireFromString("2.00"), Stock: 2},
	}
	require.NoError(t, service.BulkCreate(ctx, batch))

	products, err := service.List(ctx, storage.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Greater(t, batch[0].ID, int64(0))
}

func TestGet_NotFound(t *testing.T) {
	service := setup(t)

	_, err := service.Get(context.Background(), 42)

	var notFound *types.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ID)
}

func TestAdjustStock_Insufficient(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	product := &types.Product{Name: "A", Price: decimal.RequireFromString("1.00"), Stock: 2}
	require.NoError(t, service.Create(ctx, product))

	_, err := service.AdjustStock(ctx, product.ID, -5)

	var insuff *types.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, int64(2), insuff.Available)
	assert.Equal(t, int64(5), insuff.Requested)
}

func TestAdjustStock(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	product := &types.Product{Name: "A", Price: decimal.RequireFromString("1.00"), Stock: 2}
	require.NoError(t, service.Create(ctx, product))

	updated, err := service.AdjustStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Stock)
}
