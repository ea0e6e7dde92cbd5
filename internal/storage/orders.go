package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RahatGithub/QBoard/pkg/types"
)

// Order operations

// createOrderWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createOrderWithQuerier(ctx context.Context, q querier, order *types.Order) error {
	query := `
		INSERT INTO orders (user_id, status, order_date, total_amount)
		VALUES (?, ?, ?, ?)
	`
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}
	result, err := q.ExecContext(ctx, query,
		order.UserID, string(order.Status), order.OrderDate, order.TotalAmount.String())
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = id
	return nil
}

func (s *SQLiteStorage) CreateOrder(ctx context.Context, order *types.Order) error {
	return s.createOrderWithQuerier(ctx, s.querier(), order)
}

// scanOrderHeader reads one order row without its items
func scanOrderHeader(row interface{ Scan(...interface{}) error }) (*types.Order, error) {
	var order types.Order
	var status, total string
	err := row.Scan(&order.ID, &order.UserID, &status, &order.OrderDate, &total)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	order.Status = types.OrderStatus(status)
	order.TotalAmount, err = parseDecimal(total)
	if err != nil {
		return nil, fmt.Errorf("invalid stored total for order %d: %w", order.ID, err)
	}
	return &order, nil
}

// getOrderWithQuerier loads an order header and its line items
func (s *SQLiteStorage) getOrderWithQuerier(ctx context.Context, q querier, orderID int64) (*types.Order, error) {
	query := `
		SELECT id, user_id, status, order_date, total_amount
		FROM orders
		WHERE id = ?
	`
	order, err := scanOrderHeader(q.QueryRowContext(ctx, query, orderID))
	if err != nil {
		return nil, err
	}

	order.Items, err = s.listOrderItemsWithQuerier(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *SQLiteStorage) GetOrder(ctx context.Context, orderID int64) (*types.Order, error) {
	return s.getOrderWithQuerier(ctx, s.querier(), orderID)
}

// updateOrderHeaderWithQuerier persists status and total. order_date and
// user_id are set once at creation and never rewritten.
func (s *SQLiteStorage) updateOrderHeaderWithQuerier(ctx context.Context, q querier, order *types.Order) error {
	query := `
		UPDATE orders
		SET status = ?, total_amount = ?
		WHERE id = ?
	`
	result, err := q.ExecContext(ctx, query,
		string(order.Status), order.TotalAmount.String(), order.ID)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) UpdateOrderHeader(ctx context.Context, order *types.Order) error {
	return s.updateOrderHeaderWithQuerier(ctx, s.querier(), order)
}

// deleteOrderWithQuerier removes an order; its items go with it via the
// ON DELETE CASCADE constraint. Deletion has no stock effect.
func (s *SQLiteStorage) deleteOrderWithQuerier(ctx context.Context, q querier, orderID int64) error {
	result, err := q.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.deleteOrderWithQuerier(ctx, s.querier(), orderID)
}

// listOrdersWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listOrdersWithQuerier(ctx context.Context, q querier, filter OrderFilter) ([]*types.Order, error) {
	query := `
		SELECT id, user_id, status, order_date, total_amount
		FROM orders
	`
	args := []interface{}{}
	where := ""
	if filter.Status != "" {
		where = " WHERE status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.UserID != 0 {
		if where == "" {
			where = " WHERE user_id = ?"
		} else {
			where += " AND user_id = ?"
		}
		args = append(args, filter.UserID)
	}
	query += where
	if filter.Recent {
		query += " ORDER BY order_date DESC, id DESC"
	} else {
		query += " ORDER BY id"
	}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []*types.Order
	for rows.Next() {
		order, err := scanOrderHeader(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		order.Items, err = s.listOrderItemsWithQuerier(ctx, q, order.ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *SQLiteStorage) ListOrders(ctx context.Context, filter OrderFilter) ([]*types.Order, error) {
	return s.listOrdersWithQuerier(ctx, s.querier(), filter)
}

// Order item operations

// insertOrderItemsWithQuerier inserts a batch of line items for one order
func (s *SQLiteStorage) insertOrderItemsWithQuerier(ctx context.Context, q querier, orderID int64, items []types.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity)
		VALUES (?, ?, ?)
	`
	for i := range items {
		result, err := q.ExecContext(ctx, query, orderID, items[i].ProductID, items[i].Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		items[i].ID = id
		items[i].OrderID = orderID
	}
	return nil
}

func (s *SQLiteStorage) InsertOrderItems(ctx context.Context, orderID int64, items []types.OrderItem) error {
	return s.insertOrderItemsWithQuerier(ctx, s.querier(), orderID, items)
}

// listOrderItemsWithQuerier returns an order's items in insertion order
func (s *SQLiteStorage) listOrderItemsWithQuerier(ctx context.Context, q querier, orderID int64) ([]types.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`
	rows, err := q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []types.OrderItem
	for rows.Next() {
		var item types.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStorage) ListOrderItems(ctx context.Context, orderID int64) ([]types.OrderItem, error) {
	return s.listOrderItemsWithQuerier(ctx, s.querier(), orderID)
}

// deleteOrderItemsWithQuerier removes all of an order's items
func (s *SQLiteStorage) deleteOrderItemsWithQuerier(ctx context.Context, q querier, orderID int64) error {
	_, err := q.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = ?", orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) DeleteOrderItems(ctx context.Context, orderID int64) error {
	return s.deleteOrderItemsWithQuerier(ctx, s.querier(), orderID)
}

// Transaction delegations for order operations

func (t *sqliteTx) CreateOrder(ctx context.Context, order *types.Order) error {
	return t.storage.createOrderWithQuerier(ctx, t.querier(), order)
}

func (t *sqliteTx) GetOrder(ctx context.Context, orderID int64) (*types.Order, error) {
	return t.storage.getOrderWithQuerier(ctx, t.querier(), orderID)
}

func (t *sqliteTx) UpdateOrderHeader(ctx context.Context, order *types.Order) error {
	return t.storage.updateOrderHeaderWithQuerier(ctx, t.querier(), order)
}

func (t *sqliteTx) DeleteOrder(ctx context.Context, orderID int64) error {
	return t.storage.deleteOrderWithQuerier(ctx, t.querier(), orderID)
}

func (t *sqliteTx) ListOrders(ctx context.Context, filter OrderFilter) ([]*types.Order, error) {
	return t.storage.listOrdersWithQuerier(ctx, t.querier(), filter)
}

func (t *sqliteTx) InsertOrderItems(ctx context.Context, orderID int64, items []types.OrderItem) error {
	return t.storage.insertOrderItemsWithQuerier(ctx, t.querier(), orderID, items)
}

func (t *sqliteTx) ListOrderItems(ctx context.Context, orderID int64) ([]types.OrderItem, error) {
	return t.storage.listOrderItemsWithQuerier(ctx, t.querier(), orderID)
}

func (t *sqliteTx) DeleteOrderItems(ctx context.Context, orderID int64) error {
	return t.storage.deleteOrderItemsWithQuerier(ctx, t.querier(), orderID)
}
