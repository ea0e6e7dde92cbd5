package orders

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// RecomputeTotal derives an order's total by summing quantity times the
// product's price at the moment of computation. Prices are not re-captured
// retroactively: the total only moves when the item set is recomputed.
// An empty item set yields zero.
func RecomputeTotal(ctx context.Context, st storage.Storage, items []types.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		product, err := st.GetProduct(ctx, item.ProductID)
		if errors.Is(err, storage.ErrNotFound) {
			return decimal.Zero, &types.ProductNotFoundError{ID: item.ProductID}
		}
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total, nil
}

// totalFromProducts computes the same sum from products already loaded in
// the current transaction, avoiding a second read per line.
func totalFromProducts(items []types.OrderItem, products map[int64]*types.Product) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}
