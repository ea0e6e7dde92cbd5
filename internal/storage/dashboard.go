package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/pkg/types"
)

// Dashboard operations

// countEntitiesWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) countEntitiesWithQuerier(ctx context.Context, q querier) (*EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM orders WHERE status = 'completed'),
			(SELECT COUNT(*) FROM orders WHERE status = 'cancelled')
	`
	var counts EntityCounts
	err := q.QueryRowContext(ctx, query).Scan(
		&counts.Users, &counts.Employees, &counts.Products, &counts.Orders,
		&counts.PendingOrders, &counts.CompletedOrders, &counts.CancelledOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}
	return &counts, nil
}

func (s *SQLiteStorage) CountEntities(ctx context.Context) (*EntityCounts, error) {
	return s.countEntitiesWithQuerier(ctx, s.querier())
}

// sumOrderTotalsWithQuerier sums total_amount over orders in one status.
// Totals are stored as decimal strings, so the sum is computed in Go rather
// than with SQL SUM to keep exact arithmetic.
func (s *SQLiteStorage) sumOrderTotalsWithQuerier(ctx context.Context, q querier, status types.OrderStatus) (decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx, "SELECT total_amount FROM orders WHERE status = ?", string(status))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum order totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sum := decimal.Zero
	for rows.Next() {
		var total string
		if err := rows.Scan(&total); err != nil {
			return decimal.Zero, err
		}
		amount, err := parseDecimal(total)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(amount)
	}
	return sum, rows.Err()
}

func (s *SQLiteStorage) SumOrderTotals(ctx context.Context, status types.OrderStatus) (decimal.Decimal, error) {
	return s.sumOrderTotalsWithQuerier(ctx, s.querier(), status)
}

// ordersPerMonthWithQuerier buckets orders by calendar month since the cutoff
func (s *SQLiteStorage) ordersPerMonthWithQuerier(ctx context.Context, q querier, since time.Time) ([]MonthCount, error) {
	query := `
		SELECT strftime('%Y-%m', order_date) AS month, COUNT(*)
		FROM orders
		WHERE order_date >= ?
		GROUP BY month
		ORDER BY month
	`
	rows, err := q.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket orders per month: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var buckets []MonthCount
	for rows.Next() {
		var bucket MonthCount
		if err := rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	return buckets, rows.Err()
}

func (s *SQLiteStorage) OrdersPerMonth(ctx context.Context, since time.Time) ([]MonthCount, error) {
	return s.ordersPerMonthWithQuerier(ctx, s.querier(), since)
}

// topProductsWithQuerier returns products ranked by how many order lines
// reference them
func (s *SQLiteStorage) topProductsWithQuerier(ctx context.Context, q querier, limit int) ([]ProductOrderCount, error) {
	query := `
		SELECT p.id, p.name, p.category, p.price, COUNT(oi.id) AS order_count
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id, p.name, p.category, p.price
		ORDER BY order_count DESC, p.id
		LIMIT ?
	`
	rows, err := q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var top []ProductOrderCount
	for rows.Next() {
		var entry ProductOrderCount
		var price string
		if err := rows.Scan(&entry.ProductID, &entry.Name, &entry.Category, &price, &entry.OrderCount); err != nil {
			return nil, err
		}
		entry.Price, err = parseDecimal(price)
		if err != nil {
			return nil, err
		}
		top = append(top, entry)
	}
	return top, rows.Err()
}

func (s *SQLiteStorage) TopProducts(ctx context.Context, limit int) ([]ProductOrderCount, error) {
	return s.topProductsWithQuerier(ctx, s.querier(), limit)
}

// Transaction delegations for dashboard operations

func (t *sqliteTx) CountEntities(ctx context.Context) (*EntityCounts, error) {
	return t.storage.countEntitiesWithQuerier(ctx, t.querier())
}

func (t *sqliteTx) SumOrderTotals(ctx context.Context, status types.OrderStatus) (decimal.Decimal, error) {
	return t.storage.sumOrderTotalsWithQuerier(ctx, t.querier(), status)
}

func (t *sqliteTx) OrdersPerMonth(ctx context.Context, since time.Time) ([]MonthCount, error) {
	return t.storage.ordersPerMonthWithQuerier(ctx, t.querier(), since)
}

func (t *sqliteTx) TopProducts(ctx context.Context, limit int) ([]ProductOrderCount, error) {
	return t.storage.topProductsWithQuerier(ctx, t.querier(), limit)
}
