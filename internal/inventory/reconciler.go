package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// CheckAvailability validates a batch of line items against current stock
// without modifying anything. Lines are checked in submission order and the
// first insufficient one is reported; repeated lines for the same product
// count cumulatively. On success it returns the products keyed by ID so the
// caller can reuse them for pricing within the same transaction.
func CheckAvailability(ctx context.Context, st storage.Storage, items []types.OrderItem) (map[int64]*types.Product, error) {
	products := make(map[int64]*types.Product, len(items))
	required := make(map[int64]int64, len(items))

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		product, ok := products[item.ProductID]
		if !ok {
			var err error
			product, err = st.GetProduct(ctx, item.ProductID)
			if errors.Is(err, storage.ErrNotFound) {
				return nil, &types.ProductNotFoundError{ID: item.ProductID}
			}
			if err != nil {
				return nil, err
			}
			products[item.ProductID] = product
		}

		required[item.ProductID] += item.Quantity
		if product.Stock < required[item.ProductID] {
			return nil, &types.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   item.Quantity,
			}
		}
	}

	return products, nil
}

// Reserve decrements each product's stock by its requested quantity, in one
// atomic batch. The whole batch is validated before any decrement; if a
// concurrent writer consumes stock between the check and the apply, the
// conditional update fails and the batch is aborted, leaving the caller's
// transaction to roll back whatever was already applied.
func Reserve(ctx context.Context, st storage.Storage, items []types.OrderItem) error {
	if _, err := CheckAvailability(ctx, st, items); err != nil {
		return err
	}

	for _, item := range items {
		_, err := st.AdjustStock(ctx, item.ProductID, -item.Quantity)
		if errors.Is(err, storage.ErrStockConflict) {
			product, getErr := st.GetProduct(ctx, item.ProductID)
			if getErr != nil {
				return fmt.Errorf("failed to reserve stock for product %d: %w", item.ProductID, err)
			}
			return &types.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   item.Quantity,
			}
		}
		if errors.Is(err, storage.ErrNotFound) {
			return &types.ProductNotFoundError{ID: item.ProductID}
		}
		if err != nil {
			return fmt.Errorf("failed to reserve stock for product %d: %w", item.ProductID, err)
		}
	}

	return nil
}

// Release increments each product's stock by the given quantity. Restocking
// is always valid; repeated lines for the same product accumulate.
func Release(ctx context.Context, st storage.Storage, items []types.OrderItem) error {
	for _, item := range items {
		_, err := st.AdjustStock(ctx, item.ProductID, item.Quantity)
		if errors.Is(err, storage.ErrNotFound) {
			return &types.ProductNotFoundError{ID: item.ProductID}
		}
		if err != nil {
			return fmt.Errorf("failed to release stock for product %d: %w", item.ProductID, err)
		}
	}

	return nil
}
