package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a duplicate entity
	ErrAlreadyExists = errors.New("already exists")
	// ErrStockConflict is returned by AdjustStock when the delta would drive
	// a product's stock negative. The row is left unchanged.
	ErrStockConflict = errors.New("stock conflict")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Single writer keeps stock check-and-decrement serialized across
	// concurrent request handlers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// BeginTx starts a new transaction
func (s *SQLiteStorage) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx, storage: s}, nil
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqliteTx wraps a SQL transaction
type sqliteTx struct {
	tx      *sql.Tx
	storage *SQLiteStorage
}

func (t *sqliteTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}

// querier returns the transaction querier
func (t *sqliteTx) querier() querier {
	return t.tx
}

// querier returns the DB querier
func (s *SQLiteStorage) querier() querier {
	return s.db
}

// parseDecimal converts a stored decimal string back to a decimal.Decimal
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// Product operations

// createProductWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createProductWithQuerier(ctx context.Context, q querier, product *types.Product) error {
	query := `
		INSERT INTO products (name, category, price, stock)
		VALUES (?, ?, ?, ?)
	`
	result, err := q.ExecContext(ctx, query,
		product.Name, product.Category, product.Price.String(), product.Stock)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	product.ID = id
	return nil
}

func (s *SQLiteStorage) CreateProduct(ctx context.Context, product *types.Product) error {
	return s.createProductWithQuerier(ctx, s.querier(), product)
}

// scanProduct reads one product row
func scanProduct(row interface{ Scan(...interface{}) error }) (*types.Product, error) {
	var product types.Product
	var price string
	err := row.Scan(&product.ID, &product.Name, &product.Category, &price, &product.Stock)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	product.Price, err = parseDecimal(price)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price for product %d: %w", product.ID, err)
	}
	return &product, nil
}

// getProductWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getProductWithQuerier(ctx context.Context, q querier, productID int64) (*types.Product, error) {
	query := `
		SELECT id, name, category, price, stock
		FROM products
		WHERE id = ?
	`
	return scanProduct(q.QueryRowContext(ctx, query, productID))
}

func (s *SQLiteStorage) GetProduct(ctx context.Context, productID int64) (*types.Product, error) {
	return s.getProductWithQuerier(ctx, s.querier(), productID)
}

// updateProductWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) updateProductWithQuerier(ctx context.Context, q querier, product *types.Product) error {
	query := `
		UPDATE products
		SET name = ?, category = ?, price = ?, stock = ?
		WHERE id = ?
	`
	result, err := q.ExecContext(ctx, query,
		product.Name, product.Category, product.Price.String(), product.Stock, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
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

func (s *SQLiteStorage) UpdateProduct(ctx context.Context, product *types.Product) error {
	return s.updateProductWithQuerier(ctx, s.querier(), product)
}

// deleteProductWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) deleteProductWithQuerier(ctx context.Context, q querier, productID int64) error {
	result, err := q.ExecContext(ctx, "DELETE FROM products WHERE id = ?", productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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

func (s *SQLiteStorage) DeleteProduct(ctx context.Context, productID int64) error {
	return s.deleteProductWithQuerier(ctx, s.querier(), productID)
}

// listProductsWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listProductsWithQuerier(ctx context.Context, q querier, filter ProductFilter) ([]*types.Product, error) {
	query := `
		SELECT id, name, category, price, stock
		FROM products
	`
	args := []interface{}{}
	if filter.Category != "" {
		query += " WHERE category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []*types.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (s *SQLiteStorage) ListProducts(ctx context.Context, filter ProductFilter) ([]*types.Product, error) {
	return s.listProductsWithQuerier(ctx, s.querier(), filter)
}

// adjustStockWithQuerier applies a stock delta as one conditional UPDATE.
// The guard in the WHERE clause makes check-and-decrement a single atomic
// statement; no caller ever reads stock and writes it back separately.
func (s *SQLiteStorage) adjustStockWithQuerier(ctx context.Context, q querier, productID int64, delta int64) (*types.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + ?
		WHERE id = ? AND stock + ? >= 0
	`
	result, err := q.ExecContext(ctx, query, delta, productID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Distinguish a missing product from an insufficient one.
		if _, err := s.getProductWithQuerier(ctx, q, productID); err != nil {
			return nil, err
		}
		return nil, ErrStockConflict
	}

	return s.getProductWithQuerier(ctx, q, productID)
}

func (s *SQLiteStorage) AdjustStock(ctx context.Context, productID int64, delta int64) (*types.Product, error) {
	return s.adjustStockWithQuerier(ctx, s.querier(), productID, delta)
}

// Transaction delegations for product operations

func (t *sqliteTx) CreateProduct(ctx context.Context, product *types.Product) error {
	return t.storage.createProductWithQuerier(ctx, t.querier(), product)
}

func (t *sqliteTx) GetProduct(ctx context.Context, productID int64) (*types.Product, error) {
	return t.storage.getProductWithQuerier(ctx, t.querier(), productID)
}

func (t *sqliteTx) UpdateProduct(ctx context.Context, product *types.Product) error {
	return t.storage.updateProductWithQuerier(ctx, t.querier(), product)
}

func (t *sqliteTx) DeleteProduct(ctx context.Context, productID int64) error {
	return t.storage.deleteProductWithQuerier(ctx, t.querier(), productID)
}

func (t *sqliteTx) ListProducts(ctx context.Context, filter ProductFilter) ([]*types.Product, error) {
	return t.storage.listProductsWithQuerier(ctx, t.querier(), filter)
}

func (t *sqliteTx) AdjustStock(ctx context.Context, productID int64, delta int64) (*types.Product, error) {
	return t.storage.adjustStockWithQuerier(ctx, t.querier(), productID, delta)
}

func (t *sqliteTx) Close() error {
	// Closing is a no-op within a transaction
	return nil
}

func (t *sqliteTx) BeginTx(ctx context.Context) (Tx, error) {
	return nil, errors.New("nested transactions are not supported")
}
