// Package catalog exposes the product catalog service.
//
// The catalog owns product CRUD and the only sanctioned write path for the
// stock counter outside the inventory reconciler: AdjustStock, a single
// atomic conditional adjustment. Callers never read stock and write it back.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// Service provides catalog operations over the storage layer
type Service struct {
	db  storage.Storage
	log *zap.Logger
}

// NewService creates a catalog service
func NewService(db storage.Storage, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Create validates and persists a new product
func (s *Service) Create(ctx context.Context, product *types.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return s.db.CreateProduct(ctx, product)
}

// BulkCreate persists a batch of products in one transaction. The batch is
// all-or-nothing: one invalid product fails the whole request.
func (s *Service) BulkCreate(ctx context.Context, products []*types.Product) error {
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, product := range products {
		if err := tx.CreateProduct(ctx, product); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk create: %w", err)
	}

	s.log.Info("products bulk created", zap.Int("count", len(products)))
	return nil
}

// Get returns one product by ID
func (s *Service) Get(ctx context.Context, productID int64) (*types.Product, error) {
	product, err := s.db.GetProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &types.ProductNotFoundError{ID: productID}
	}
	return product, err
}

// Update validates and persists product field changes, including direct
// stock corrections from the catalog's own CRUD surface
func (s *Service) Update(ctx context.Context, product *types.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	err := s.db.UpdateProduct(ctx, product)
	if errors.Is(err, storage.ErrNotFound) {
		return &types.ProductNotFoundError{ID: product.ID}
	}
	return err
}

// Delete removes a product from the catalog
func (s *Service) Delete(ctx context.Context, productID int64) error {
	err := s.db.DeleteProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return &types.ProductNotFoundError{ID: productID}
	}
	return err
}

// List returns products matching the filter
func (s *Service) List(ctx context.Context, filter storage.ProductFilter) ([]*types.Product, error) {
	return s.db.ListProducts(ctx, filter)
}

// AdjustStock applies a stock delta atomically. A delta that would drive
// stock negative returns an InsufficientStockError and changes nothing.
func (s *Service) AdjustStock(ctx context.Context, productID int64, delta int64) (*types.Product, error) {
	product, err := s.db.AdjustStock(ctx, productID, delta)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &types.ProductNotFoundError{ID: productID}
	}
	if errors.Is(err, storage.ErrStockConflict) {
		current, getErr := s.db.GetProduct(ctx, productID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, &types.InsufficientStockError{
			ProductID:   current.ID,
			ProductName: current.Name,
			Available:   current.Stock,
			Requested:   -delta,
		}
	}
	return product, err
}
