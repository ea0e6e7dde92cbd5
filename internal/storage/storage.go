package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RahatGithub/QBoard/pkg/types"
)

// Storage defines the interface for persisting QBoard entities
type Storage interface {
	// Product operations
	CreateProduct(ctx context.Context, product *types.Product) error
	GetProduct(ctx context.Context, productID int64) (*types.Product, error)
	UpdateProduct(ctx context.Context, product *types.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
	ListProducts(ctx context.Context, filter ProductFilter) ([]*types.Product, error)

	// AdjustStock applies a stock delta as a single conditional update. It
	// returns ErrStockConflict when the resulting stock would be negative,
	// without modifying the row. This is the only write path for stock.
	AdjustStock(ctx context.Context, productID int64, delta int64) (*types.Product, error)

	// Order operations
	CreateOrder(ctx context.Context, order *types.Order) error
	GetOrder(ctx context.Context, orderID int64) (*types.Order, error)
	UpdateOrderHeader(ctx context.Context, order *types.Order) error
	DeleteOrder(ctx context.Context, orderID int64) error
	ListOrders(ctx context.Context, filter OrderFilter) ([]*types.Order, error)

	// Order item operations
	InsertOrderItems(ctx context.Context, orderID int64, items []types.OrderItem) error
	ListOrderItems(ctx context.Context, orderID int64) ([]types.OrderItem, error)
	DeleteOrderItems(ctx context.Context, orderID int64) error

	// User operations
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, userID int64) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	UpdateUser(ctx context.Context, user *types.User) error
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context, filter UserFilter) ([]*types.User, error)

	// Employee operations
	CreateEmployee(ctx context.Context, employee *types.Employee) error
	GetEmployee(ctx context.Context, employeeID int64) (*types.Employee, error)
	UpdateEmployee(ctx context.Context, employee *types.Employee) error
	DeleteEmployee(ctx context.Context, employeeID int64) error
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]*types.Employee, error)

	// Dashboard operations
	CountEntities(ctx context.Context) (*EntityCounts, error)
	SumOrderTotals(ctx context.Context, status types.OrderStatus) (decimal.Decimal, error)
	OrdersPerMonth(ctx context.Context, since time.Time) ([]MonthCount, error)
	TopProducts(ctx context.Context, limit int) ([]ProductOrderCount, error)

	// Database operations
	Close() error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx represents a database transaction
type Tx interface {
	Commit() error
	Rollback() error
	Storage // Embed Storage interface for transaction operations
}

// ProductFilter narrows ListProducts results
type ProductFilter struct {
	Category string // Empty means all categories
	Limit    int    // Zero means no limit
}

// OrderFilter narrows ListOrders results
type OrderFilter struct {
	Status types.OrderStatus // Empty means all statuses
	UserID int64             // Zero means all users
	Limit  int
	Recent bool // Order by order_date descending
}

// UserFilter narrows ListUsers results
type UserFilter struct {
	Role   types.Role
	Limit  int
	Recent bool // Order by date_joined descending
}

// EmployeeFilter narrows ListEmployees results
type EmployeeFilter struct {
	Department string
	Position   string
	Limit      int
	Recent     bool // Order by hire_date descending
}

// EntityCounts holds per-table row counts for the dashboard summary
type EntityCounts struct {
	Users           int64
	Employees       int64
	Products        int64
	Orders          int64
	PendingOrders   int64
	CompletedOrders int64
	CancelledOrders int64
}

// MonthCount is the number of orders placed in one calendar month
type MonthCount struct {
	Month string // YYYY-MM
	Count int64
}

// ProductOrderCount is a product with the number of order lines referencing it
type ProductOrderCount struct {
	ProductID  int64
	Name       string
	Category   string
	Price      decimal.Decimal
	OrderCount int64
}
