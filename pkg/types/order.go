package types

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether an order in status s rejects further edits.
// Status-only transitions out of a terminal state are governed separately by
// the transition table, not by this flag.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// OrderItem is one (product, quantity) line within an order. Items are never
// mutated in place; replacing an order's items deletes the old set and
// inserts the new one.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
}

// Validate checks the line item's field constraints.
func (it *OrderItem) Validate() error {
	if it.ProductID == 0 {
		return errors.New("order item must reference a product")
	}

	if it.Quantity <= 0 {
		return &InvalidQuantityError{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	return nil
}

// Order is the aggregate root: a header plus its line items.
//
// TotalAmount is derived by summing quantity times the product price at
// computation time. OrderDate is set once at creation.
type Order struct {
	ID          int64
	UserID      int64
	Status      OrderStatus
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	Items       []OrderItem
}

// Validate checks header and line-item constraints before any stock logic runs.
func (o *Order) Validate() error {
	if o.UserID == 0 {
		return errors.New("order must reference a user")
	}

	if !o.Status.Valid() {
		return errors.New("unknown order status: " + string(o.Status))
	}

	for i := range o.Items {
		if err := o.Items[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
