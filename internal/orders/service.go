package orders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/RahatGithub/QBoard/internal/inventory"
	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// Service coordinates order mutations against the storage layer
type Service struct {
	db  storage.Storage
	log *zap.Logger
}

// NewService creates an order service
func NewService(db storage.Storage, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// CreateRequest carries the inputs for a new order
type CreateRequest struct {
	UserID int64
	Status types.OrderStatus // Defaults to pending when empty
	Items  []types.OrderItem
}

// UpdateRequest carries a partial order update. Nil fields are left
// unchanged; a non-nil empty Items slice clears the item set.
type UpdateRequest struct {
	Status *types.OrderStatus
	Items  *[]types.OrderItem
}

// Create builds a new order. Every line is validated against current stock
// before anything is persisted; if any line is unsatisfiable the creation
// fails and nothing is written. Stock is reserved only when the order starts
// pending.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*types.Order, error) {
	status := req.Status
	if status == "" {
		status = types.OrderPending
	}

	order := &types.Order{
		UserID: req.UserID,
		Status: status,
		Items:  req.Items,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Sufficiency is checked for every line regardless of status, so a
	// creation that would overdraw stock fails even when no reservation
	// will be applied.
	products, err := inventory.CheckAvailability(ctx, tx, order.Items)
	if err != nil {
		return nil, err
	}

	if err := tx.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := tx.InsertOrderItems(ctx, order.ID, order.Items); err != nil {
		return nil, err
	}

	if order.Status == types.OrderPending {
		if err := inventory.Reserve(ctx, tx, order.Items); err != nil {
			return nil, err
		}
	}

	order.TotalAmount = totalFromProducts(order.Items, products)
	if err := tx.UpdateOrderHeader(ctx, order); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}

	s.log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.String("status", string(order.Status)),
		zap.String("total", order.TotalAmount.String()),
	)
	return order, nil
}

// Update applies a status change and/or item replacement to an order.
//
// Orders already in a terminal status reject item replacement and field
// edits; status-only changes out of a terminal state are permitted exactly
// when the transition table lists them. The whole update is one transaction:
// an insufficient reserve aborts the status change and the item rewrite
// together.
func (s *Service) Update(ctx context.Context, orderID int64, req UpdateRequest) (*types.Order, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	order, err := tx.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	newStatus := oldStatus
	if req.Status != nil {
		newStatus = *req.Status
		if !newStatus.Valid() {
			return nil, fmt.Errorf("unknown order status: %s", newStatus)
		}
	}

	if oldStatus.Terminal() && (req.Items != nil || req.Status == nil) {
		return nil, &types.TerminalOrderStateError{OrderID: orderID, Status: oldStatus}
	}

	if newStatus != oldStatus {
		effect, ok := effectFor(oldStatus, newStatus)
		if !ok {
			return nil, &types.InvalidTransitionError{OrderID: orderID, From: oldStatus, To: newStatus}
		}
		switch effect {
		case effectRelease:
			if err := inventory.Release(ctx, tx, order.Items); err != nil {
				return nil, err
			}
		case effectReserve:
			if err := inventory.Reserve(ctx, tx, order.Items); err != nil {
				return nil, err
			}
		}
		order.Status = newStatus
	}

	if req.Items != nil {
		newItems := *req.Items
		for i := range newItems {
			if err := newItems[i].Validate(); err != nil {
				return nil, err
			}
		}

		// The old set's reservation is still held unless this request's
		// transition already released it.
		if oldStatus == types.OrderPending && newStatus != types.OrderCancelled {
			if err := inventory.Release(ctx, tx, order.Items); err != nil {
				return nil, err
			}
		}

		if err := tx.DeleteOrderItems(ctx, order.ID); err != nil {
			return nil, err
		}
		if err := tx.InsertOrderItems(ctx, order.ID, newItems); err != nil {
			return nil, err
		}
		order.Items = newItems

		if order.Status == types.OrderPending {
			if err := inventory.Reserve(ctx, tx, newItems); err != nil {
				return nil, err
			}
		}

		order.TotalAmount, err = RecomputeTotal(ctx, tx, newItems)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.UpdateOrderHeader(ctx, order); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order update: %w", err)
	}

	s.log.Info("order updated",
		zap.Int64("order_id", order.ID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(order.Status)),
		zap.Bool("items_replaced", req.Items != nil),
	)
	return order, nil
}

// Get loads one order with its items
func (s *Service) Get(ctx context.Context, orderID int64) (*types.Order, error) {
	return s.db.GetOrder(ctx, orderID)
}

// List returns orders matching the filter
func (s *Service) List(ctx context.Context, filter storage.OrderFilter) ([]*types.Order, error) {
	return s.db.ListOrders(ctx, filter)
}

// Delete removes an order and its items. Deletion performs no restock.
func (s *Service) Delete(ctx context.Context, orderID int64) error {
	if err := s.db.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.log.Info("order deleted", zap.Int64("order_id", orderID))
	return nil
}
