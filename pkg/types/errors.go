package types

import "fmt"

// InsufficientStockError reports the first line item in a reservation whose
// requested quantity exceeds the product's available stock. No stock is
// modified when this error is returned.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %q: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

// InvalidQuantityError reports a non-positive line item quantity. It is
// raised by validation before any stock logic runs.
type InvalidQuantityError struct {
	ProductID int64
	Quantity  int64
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %d: must be a positive integer",
		e.Quantity, e.ProductID)
}

// TerminalOrderStateError reports an edit attempted on an order that is
// already completed or cancelled.
type TerminalOrderStateError struct {
	OrderID int64
	Status  OrderStatus
}

func (e *TerminalOrderStateError) Error() string {
	return fmt.Sprintf("order %d is already %s and cannot be updated", e.OrderID, e.Status)
}

// InvalidTransitionError reports a status change that is not in the
// transition table. Unknown transitions are rejected, never silently ignored.
type InvalidTransitionError struct {
	OrderID int64
	From    OrderStatus
	To      OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %d: status transition %s -> %s is not allowed", e.OrderID, e.From, e.To)
}

// ProductNotFoundError reports a line item referencing a product that does
// not exist in the catalog.
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ID)
}
