// Package storage provides SQLite-based persistence for QBoard entities.
//
// The storage layer manages:
//   - Users and employees
//   - The product catalog, including the stock counter
//   - Orders and their line items
//   - Dashboard aggregate queries
//
// # Database Schema
//
// Tables:
//   - users: account records (username, role, bcrypt hash)
//   - employees: staff records
//   - products: catalog entries with price (decimal string) and stock
//   - orders: order headers (status, owner, date, derived total)
//   - order_items: (order, product, quantity) lines, cascade-deleted
//
// # Stock Adjustment
//
// AdjustStock is the single write path for the stock counter. It applies the
// delta as one conditional UPDATE so check-and-decrement cannot interleave
// with a concurrent adjustment:
//
//	product, err := db.AdjustStock(ctx, productID, -3)
//	if errors.Is(err, storage.ErrStockConflict) {
//	    // stock would have gone negative; nothing was changed
//	}
//
// # Transactions
//
// Order mutations run inside a transaction so stock effects, item rewrites
// and total updates commit or roll back together:
//
//	tx, err := db.BeginTx(ctx)
//	if err != nil {
//	    return err
//	}
//	defer tx.Rollback()
//
//	// Multiple operations in transaction
//	_ = tx.CreateOrder(ctx, order)
//	_ = tx.InsertOrderItems(ctx, order.ID, order.Items)
//	_, _ = tx.AdjustStock(ctx, productID, -qty)
//
//	if err := tx.Commit(); err != nil {
//	    return err
//	}
//
// # Build Tags
//
// The storage package supports two build configurations:
//
// CGO Build (cgo_sqlite tag):
//
//   - Uses github.com/mattn/go-sqlite3 driver
//
//   - Requires C compiler
//
//     CGO_ENABLED=1 go build -tags "cgo_sqlite"
//
// Pure Go Build (default):
//
//   - Uses modernc.org/sqlite driver
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build ./...
package storage
